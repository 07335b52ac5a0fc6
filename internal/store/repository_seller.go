package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/models"
)

// sellerRepository is the SQL-backed implementation of [SellerRepository].
// It handles seller account lookups against the "sellers" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sellerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSellerRepository constructs a [SellerRepository] backed by the provided
// database connection and logger.
func NewSellerRepository(db *DB, logger *logger.Logger) SellerRepository {
	logger.Debug().Msg("creating seller repository")
	return &sellerRepository{
		db:     db,
		logger: logger,
	}
}

// FindByMemberID resolves the seller behind an authenticated actor id.
//
// Error handling:
//   - No matching row → [ErrSellerNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *sellerRepository) FindByMemberID(ctx context.Context, memberID string) (models.Seller, error) {
	return r.findOne(ctx, sq.Eq{"member_id": memberID})
}

// FindByEmail looks up a seller account by email for token exchange.
//
// Error handling mirrors [sellerRepository.FindByMemberID].
func (r *sellerRepository) FindByEmail(ctx context.Context, email string) (models.Seller, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r *sellerRepository) findOne(ctx context.Context, predicate sq.Eq) (models.Seller, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sellerColumns...).
		From(sellersTable).
		Where(predicate).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sellerRepository.findOne").Msg("error building query")
		return models.Seller{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seller models.Seller
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&seller.ID, &seller.Email, &seller.Name, &seller.MemberID, &seller.APIKeyHash, &seller.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Seller{}, ErrSellerNotFound
		}

		log.Err(err).Str("func", "*sellerRepository.findOne").Msg("error: scanning error")
		return models.Seller{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return seller, nil
}
