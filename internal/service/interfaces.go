package service

import (
	"context"

	"github.com/marketcore/vendor-shipping/models"
)

// AuthService issues and verifies vendor JWT tokens.
type AuthService interface {
	// IssueToken exchanges seller credentials (email + API key) for a signed
	// JWT carrying the seller's member id as the subject claim.
	IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SellerService resolves seller accounts from authenticated actor ids.
type SellerService interface {
	// ResolveByActorID returns the seller associated with the actor id
	// carried in the token subject.
	ResolveByActorID(ctx context.Context, actorID string) (models.Seller, error)
}

// ShippingOptionService implements the vendor shipping option operations.
// Ownership is enforced per call: single-option operations verify the acting
// seller owns the option through its link record.
type ShippingOptionService interface {
	// Create validates the request, verifies the service zone exists, and
	// persists the option together with its seller ownership link in one
	// transaction. Returns the option re-read from storage.
	Create(ctx context.Context, seller models.Seller, serviceZoneID string, req models.CreateShippingOptionRequest) (models.ShippingOption, error)

	// List returns one page of a zone's shipping options plus the total
	// count of records matching the filter.
	List(ctx context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error)

	// Get returns a single option owned by the seller.
	Get(ctx context.Context, seller models.Seller, id string) (models.ShippingOption, error)

	// Update applies a partial update to an option owned by the seller and
	// returns the updated record.
	Update(ctx context.Context, seller models.Seller, id string, req models.UpdateShippingOptionRequest) (models.ShippingOption, error)

	// Delete removes an option owned by the seller together with its link
	// record in one transaction.
	Delete(ctx context.Context, seller models.Seller, id string) error
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
