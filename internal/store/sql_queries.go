package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/marketcore/vendor-shipping/models"
)

// Table names used by the repositories.
const (
	sellersTable         = "sellers"
	serviceZonesTable    = "service_zones"
	shippingOptionsTable = "shipping_options"
	sellerLinksTable     = "seller_shipping_option_links"
)

// Column sets scanned by the repositories. Order must match the scan order
// in the corresponding repository methods.
var (
	sellerColumns         = []string{"id", "email", "name", "member_id", "api_key_hash", "created_at"}
	serviceZoneColumns    = []string{"id", "name", "created_at"}
	shippingOptionColumns = []string{"id", "name", "price_type", "amount", "currency_code", "service_zone_id", "data", "created_at", "updated_at"}
)

// shippingOptionPredicate translates a [models.ListShippingOptionsFilter]
// into squirrel WHERE clauses shared by the page query and the count query.
func shippingOptionPredicate(query sq.SelectBuilder, filter models.ListShippingOptionsFilter) sq.SelectBuilder {
	query = query.Where(sq.Eq{"service_zone_id": filter.ServiceZoneID})

	if filter.Name != "" {
		query = query.Where(sq.Eq{"name": filter.Name})
	}
	if filter.PriceType != "" {
		query = query.Where(sq.Eq{"price_type": filter.PriceType})
	}
	if filter.Query != "" {
		// LOWER + LIKE keeps the substring match case-insensitive on both
		// PostgreSQL and SQLite.
		query = query.Where(sq.Expr("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Query)+"%"))
	}

	return query
}

// buildListShippingOptionsQuery builds the paginated page query for the
// given filter.
func (db *DB) buildListShippingOptionsQuery(filter models.ListShippingOptionsFilter) (string, []any, error) {
	query := db.builder.
		Select(shippingOptionColumns...).
		From(shippingOptionsTable)

	query = shippingOptionPredicate(query, filter).
		OrderBy("created_at ASC", "id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	return query.ToSql()
}

// buildCountShippingOptionsQuery builds the total-count query matching the
// same predicate as the page query.
func (db *DB) buildCountShippingOptionsQuery(filter models.ListShippingOptionsFilter) (string, []any, error) {
	query := db.builder.
		Select("COUNT(*)").
		From(shippingOptionsTable)

	return shippingOptionPredicate(query, filter).ToSql()
}

// buildUpdateShippingOptionQuery builds a partial UPDATE applying only the
// non-nil fields of upd. Returns ok=false when upd carries no changes.
func (db *DB) buildUpdateShippingOptionQuery(id string, upd models.UpdateShippingOptionRequest, data *string, updatedAt time.Time) (string, []any, bool, error) {
	query := db.builder.
		Update(shippingOptionsTable).
		Set("updated_at", updatedAt)

	changed := false
	if upd.Name != nil {
		query = query.Set("name", *upd.Name)
		changed = true
	}
	if upd.Amount != nil {
		query = query.Set("amount", *upd.Amount)
		changed = true
	}
	if data != nil {
		query = query.Set("data", *data)
		changed = true
	}

	if !changed {
		return "", nil, false, nil
	}

	sqlStr, args, err := query.Where(sq.Eq{"id": id}).ToSql()
	return sqlStr, args, true, err
}

// buildOrphanShippingOptionsQuery builds the consistency scan used by the
// orphan sweeper: shipping options that have no owning seller link.
func (db *DB) buildOrphanShippingOptionsQuery(limit uint64) (string, []any, error) {
	return db.builder.
		Select("o.id").
		From(shippingOptionsTable + " o").
		LeftJoin(sellerLinksTable + " l ON l.shipping_option_id = o.id").
		Where("l.shipping_option_id IS NULL").
		OrderBy("o.created_at ASC").
		Limit(limit).
		ToSql()
}
