package store

import (
	"context"
	"fmt"

	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. A single instance is created at startup and passed to the
// service layer.
type Storages struct {
	SellerRepository         SellerRepository
	ServiceZoneRepository    ServiceZoneRepository
	ShippingOptionRepository ShippingOptionRepository
	LinkRepository           LinkRepository

	db *DB
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDatabaseConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		SellerRepository:         NewSellerRepository(db, log),
		ServiceZoneRepository:    NewServiceZoneRepository(db, log),
		ShippingOptionRepository: NewShippingOptionRepository(db, log),
		LinkRepository:           NewLinkRepository(db, log),
		db:                       db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
