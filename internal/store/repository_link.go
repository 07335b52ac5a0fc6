package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/marketcore/vendor-shipping/internal/logger"
)

// linkRepository is the SQL-backed implementation of [LinkRepository].
// It reads the seller ownership link records written by the shipping option
// repository; it never writes links itself.
type linkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLinkRepository constructs a [LinkRepository] backed by the provided
// database connection and logger.
func NewLinkRepository(db *DB, logger *logger.Logger) LinkRepository {
	logger.Debug().Msg("creating link repository")
	return &linkRepository{
		db:     db,
		logger: logger,
	}
}

// OwnerOf returns the seller id owning the given shipping option.
//
// Error handling:
//   - No matching row → [ErrLinkNotFound].
func (r *linkRepository) OwnerOf(ctx context.Context, shippingOptionID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("seller_id").
		From(sellerLinksTable).
		Where(sq.Eq{"shipping_option_id": shippingOptionID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sellerID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&sellerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLinkNotFound
		}

		log.Err(err).Str("func", "*linkRepository.OwnerOf").Msg("error: scanning error")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sellerID, nil
}

// FindOrphanShippingOptions returns ids of shipping options that have no
// owning seller link, up to limit entries. This API writes option and link
// atomically, so orphans can only originate from other writers sharing the
// store.
func (r *linkRepository) FindOrphanShippingOptions(ctx context.Context, limit uint64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildOrphanShippingOptionsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*linkRepository.FindOrphanShippingOptions").Msg("error executing orphan scan")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var orphans []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orphans = append(orphans, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orphans, nil
}
