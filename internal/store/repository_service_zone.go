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

// serviceZoneRepository is the SQL-backed implementation of
// [ServiceZoneRepository].
type serviceZoneRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewServiceZoneRepository constructs a [ServiceZoneRepository] backed by the
// provided database connection and logger.
func NewServiceZoneRepository(db *DB, logger *logger.Logger) ServiceZoneRepository {
	logger.Debug().Msg("creating service zone repository")
	return &serviceZoneRepository{
		db:     db,
		logger: logger,
	}
}

// FindByID retrieves a service zone by its identifier.
//
// Error handling:
//   - No matching row → [ErrServiceZoneNotFound].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *serviceZoneRepository) FindByID(ctx context.Context, id string) (models.ServiceZone, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(serviceZoneColumns...).
		From(serviceZonesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*serviceZoneRepository.FindByID").Msg("error building query")
		return models.ServiceZone{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var zone models.ServiceZone
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&zone.ID, &zone.Name, &zone.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ServiceZone{}, ErrServiceZoneNotFound
		}

		log.Err(err).Str("func", "*serviceZoneRepository.FindByID").Msg("error: scanning error")
		return models.ServiceZone{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return zone, nil
}
