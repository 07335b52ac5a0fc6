package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/models"
)

// shippingOptionRepository is the SQL-backed implementation of
// [ShippingOptionRepository]. It owns the shipping_options table and the
// seller link rows that accompany every option.
//
// The option row and its ownership link are always written and removed
// together inside one transaction, so the store never exposes a
// partially-owned option to concurrent readers.
type shippingOptionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShippingOptionRepository constructs a [ShippingOptionRepository] backed
// by the provided database connection and logger.
func NewShippingOptionRepository(db *DB, logger *logger.Logger) ShippingOptionRepository {
	logger.Debug().Msg("creating shipping option repository")
	return &shippingOptionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWithLink inserts the shipping option and its seller ownership link in
// a single transaction.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrServiceZoneNotFound]
//     (the option references a zone that does not exist).
//   - PostgreSQL unique_violation (23505) on the link insert →
//     [ErrShippingOptionAlreadyLinked].
//   - Transaction begin/commit failures → wrapped sentinel errors.
func (r *shippingOptionRepository) CreateWithLink(ctx context.Context, option models.ShippingOption, sellerID string) error {
	log := logger.FromContext(ctx)

	data, err := marshalOptionData(option.Data)
	if err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.CreateWithLink").Msg("error marshaling option data")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	optionQuery, optionArgs, err := r.db.builder.
		Insert(shippingOptionsTable).
		Columns(shippingOptionColumns...).
		Values(option.ID, option.Name, option.PriceType, option.Amount, option.CurrencyCode, option.ServiceZoneID, data, option.CreatedAt, option.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	linkQuery, linkArgs, err := r.db.builder.
		Insert(sellerLinksTable).
		Columns("seller_id", "shipping_option_id", "created_at").
		Values(sellerID, option.ID, option.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.CreateWithLink").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, optionQuery, optionArgs...); err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.CreateWithLink").Msg("error inserting shipping option")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrServiceZoneNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err := tx.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.CreateWithLink").Msg("error inserting seller link")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrShippingOptionAlreadyLinked
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.CreateWithLink").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// FindByID retrieves a shipping option by its identifier.
//
// Error handling:
//   - No matching row → [ErrShippingOptionNotFound].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *shippingOptionRepository) FindByID(ctx context.Context, id string) (models.ShippingOption, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(shippingOptionColumns...).
		From(shippingOptionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.ShippingOption{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	option, err := scanShippingOption(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShippingOption{}, ErrShippingOptionNotFound
		}

		log.Err(err).Str("func", "*shippingOptionRepository.FindByID").Msg("error: scanning error")
		return models.ShippingOption{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return option, nil
}

// List returns one page of shipping options matching the filter together
// with the total number of matching records. The page query and the count
// query share one predicate so the metadata always describes the same
// result set.
func (r *shippingOptionRepository) List(ctx context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListShippingOptionsQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.List").Msg("error executing list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	options := make([]models.ShippingOption, 0)
	for rows.Next() {
		option, err := scanShippingOption(rows)
		if err != nil {
			log.Err(err).Str("func", "*shippingOptionRepository.List").Msg("error: scanning error")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	countQuery, countArgs, err := r.db.buildCountShippingOptionsQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.List").Msg("error executing count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return options, count, nil
}

// Update applies the non-nil fields of upd to the stored option. A request
// with no changes still refreshes updated_at only when at least one field is
// set; an all-nil request is a no-op that only verifies existence.
//
// Error handling:
//   - Zero affected rows → [ErrShippingOptionNotFound].
func (r *shippingOptionRepository) Update(ctx context.Context, id string, upd models.UpdateShippingOptionRequest, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	var data *string
	if upd.Data != nil {
		marshaled, err := marshalOptionData(upd.Data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		data = &marshaled
	}

	query, args, changed, err := r.db.buildUpdateShippingOptionQuery(id, upd, data, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if !changed {
		// nothing to update - just confirm the option exists
		_, err := r.FindByID(ctx, id)
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.Update").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrShippingOptionNotFound
	}

	return nil
}

// DeleteWithLink removes the option and its seller link in one transaction.
//
// Error handling:
//   - Zero affected option rows → [ErrShippingOptionNotFound]; the
//     transaction is rolled back so a dangling link is never left behind.
func (r *shippingOptionRepository) DeleteWithLink(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	linkQuery, linkArgs, err := r.db.builder.
		Delete(sellerLinksTable).
		Where(sq.Eq{"shipping_option_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	optionQuery, optionArgs, err := r.db.builder.
		Delete(shippingOptionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.DeleteWithLink").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.DeleteWithLink").Msg("error deleting seller link")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, optionQuery, optionArgs...)
	if err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.DeleteWithLink").Msg("error deleting shipping option")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrShippingOptionNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*shippingOptionRepository.DeleteWithLink").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanShippingOption(row rowScanner) (models.ShippingOption, error) {
	var option models.ShippingOption
	var data sql.NullString

	err := row.Scan(
		&option.ID,
		&option.Name,
		&option.PriceType,
		&option.Amount,
		&option.CurrencyCode,
		&option.ServiceZoneID,
		&data,
		&option.CreatedAt,
		&option.UpdatedAt,
	)
	if err != nil {
		return models.ShippingOption{}, err
	}

	if data.Valid && data.String != "" {
		if err := json.Unmarshal([]byte(data.String), &option.Data); err != nil {
			return models.ShippingOption{}, fmt.Errorf("unmarshaling option data: %w", err)
		}
	}

	return option, nil
}

func marshalOptionData(data map[string]any) (string, error) {
	if data == nil {
		return "", nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
