package store

import (
	"context"
	"time"

	"github.com/marketcore/vendor-shipping/models"
)

// SellerRepository provides lookups of seller accounts.
type SellerRepository interface {
	// FindByMemberID resolves the seller behind an authenticated actor id.
	// Returns ErrSellerNotFound when no seller matches.
	FindByMemberID(ctx context.Context, memberID string) (models.Seller, error)

	// FindByEmail looks up a seller by account email, used during token
	// exchange. Returns ErrSellerNotFound when no seller matches.
	FindByEmail(ctx context.Context, email string) (models.Seller, error)
}

// ServiceZoneRepository provides lookups of shipping coverage zones.
type ServiceZoneRepository interface {
	// FindByID returns the zone with the given id or ErrServiceZoneNotFound.
	FindByID(ctx context.Context, id string) (models.ServiceZone, error)
}

// ShippingOptionRepository persists shipping options and their seller links.
type ShippingOptionRepository interface {
	// CreateWithLink inserts the shipping option and its seller ownership
	// link in a single transaction. Either both rows exist afterwards or
	// neither does.
	CreateWithLink(ctx context.Context, option models.ShippingOption, sellerID string) error

	// FindByID returns the option with the given id or ErrShippingOptionNotFound.
	FindByID(ctx context.Context, id string) (models.ShippingOption, error)

	// List returns one page of options matching the filter together with
	// the total number of matching records.
	List(ctx context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error)

	// Update applies the non-nil fields of upd to the stored option.
	// Returns ErrShippingOptionNotFound when no row matches.
	Update(ctx context.Context, id string, upd models.UpdateShippingOptionRequest, updatedAt time.Time) error

	// DeleteWithLink removes the option and its seller link in a single
	// transaction. Returns ErrShippingOptionNotFound when no row matches.
	DeleteWithLink(ctx context.Context, id string) error
}

// LinkRepository inspects seller ownership link records.
type LinkRepository interface {
	// OwnerOf returns the seller id owning the given shipping option, or
	// ErrLinkNotFound when the option has no link record.
	OwnerOf(ctx context.Context, shippingOptionID string) (string, error)

	// FindOrphanShippingOptions returns ids of shipping options that have
	// no owning seller link, up to limit entries.
	FindOrphanShippingOptions(ctx context.Context, limit uint64) ([]string, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
