package workers

import (
	"context"
	"sync"
	"time"

	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/store"
)

// orphanSweepLimit caps how many orphaned option ids a single scan reports.
const orphanSweepLimit = 100

// orphanSweeper periodically scans for shipping options that have no owning
// seller link. This application writes option and link in one transaction,
// so any orphan it finds was produced by another writer sharing the store.
// The sweeper only reports orphans; it never deletes them.
type orphanSweeper struct {
	links    store.LinkRepository
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newOrphanSweeper(links store.LinkRepository, interval time.Duration, logger *logger.Logger) *orphanSweeper {
	return &orphanSweeper{
		links:    links,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. It stops any previously running sweep loop, then
// launches a background goroutine that scans every interval until Stop is
// called.
func (s *orphanSweeper) Run() {
	s.Stop()

	s.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().Dur("interval", s.interval).Msg("orphan sweeper started")

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.sweep(ctx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the sweep loop and blocks until the
// goroutine has fully exited. Safe to call when the sweeper is not running.
func (s *orphanSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *orphanSweeper) sweep(ctx context.Context) {
	orphans, err := s.links.FindOrphanShippingOptions(ctx, orphanSweepLimit)
	if err != nil {
		s.logger.Err(err).Msg("orphan sweep failed")
		return
	}

	if len(orphans) == 0 {
		return
	}

	s.logger.Warn().
		Int("count", len(orphans)).
		Strs("shipping_option_ids", orphans).
		Msg("found shipping options without a seller link")
}
