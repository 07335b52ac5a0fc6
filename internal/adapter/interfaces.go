// Package adapter provides a typed HTTP client for the vendor shipping API.
// It is intended for integrations and tooling that talk to a running server
// over REST.
package adapter

import (
	"context"

	"github.com/marketcore/vendor-shipping/models"
)

// ListShippingOptionsParams carries the optional query-string filters and
// pagination settings of the list endpoint. Zero values are omitted from the
// request.
type ListShippingOptionsParams struct {
	Name      string
	Query     string
	PriceType string
	Limit     uint64
	Offset    uint64
}

// VendorClient is a typed client for the vendor-facing REST API.
//
// All authenticated calls send the bearer token previously obtained via
// IssueToken or injected via SetToken. Server-side error statuses are mapped
// to the sentinel errors of this package so callers can branch with
// errors.Is.
type VendorClient interface {
	// IssueToken exchanges seller credentials for a vendor JWT and stores
	// it for subsequent authenticated calls.
	IssueToken(ctx context.Context, credentials models.TokenRequest) (string, error)

	// SetToken stores token for use in the Authorization header of all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the client, or an
	// empty string if none has been set.
	Token() string

	// GetCurrentSeller returns the seller account behind the held token.
	GetCurrentSeller(ctx context.Context) (models.Seller, error)

	// CreateShippingOption creates a flat-price option inside the given
	// service zone. The returned map holds the fields selected by fields,
	// or every field when fields is empty.
	CreateShippingOption(ctx context.Context, serviceZoneID string, req models.CreateShippingOptionRequest, fields []string) (map[string]any, error)

	// GetShippingOption fetches one owned option by id.
	GetShippingOption(ctx context.Context, id string, fields []string) (map[string]any, error)

	// ListShippingOptions returns one page of the zone's options together
	// with pagination metadata.
	ListShippingOptions(ctx context.Context, serviceZoneID string, params ListShippingOptionsParams) (models.ShippingOptionListResponse, error)

	// UpdateShippingOption applies a partial update to one owned option.
	UpdateShippingOption(ctx context.Context, id string, req models.UpdateShippingOptionRequest, fields []string) (map[string]any, error)

	// DeleteShippingOption removes one owned option and its seller link.
	DeleteShippingOption(ctx context.Context, id string) (models.DeleteResponse, error)

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
