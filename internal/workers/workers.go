package workers

import (
	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/store"
)

// Workers aggregates every background worker of the application.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the worker set from configuration. Workers whose
// configuration disables them are simply not included.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := new(Workers)

	if cfg.OrphanSweepInterval > 0 {
		workers.workers = append(workers.workers, newOrphanSweeper(
			storages.LinkRepository,
			cfg.OrphanSweepInterval,
			logger,
		))
	}

	return workers
}

// Run starts every worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker and blocks until each has fully exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
