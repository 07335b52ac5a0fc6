package models

// CreateShippingOptionRequest is the body of
// POST /vendor/service-zones/{id}/shipping-options.
//
// PriceType and ServiceZoneID are intentionally absent: the creation flow
// forces price_type to "flat" and takes the zone from the URL path.
type CreateShippingOptionRequest struct {
	// Name is the buyer-facing label of the option. Required.
	Name string `json:"name"`

	// Amount is the flat price in the smallest currency unit. Required,
	// must not be negative. A pointer so that an absent field can be told
	// apart from an explicit zero.
	Amount *int64 `json:"amount"`

	// CurrencyCode is the ISO 4217 code of Amount (e.g. "usd").
	CurrencyCode string `json:"currency_code"`

	// Data holds optional provider-specific settings.
	Data map[string]any `json:"data,omitempty"`
}

// UpdateShippingOptionRequest is the body of
// POST /vendor/shipping-options/{id}. All fields are optional; nil pointers
// leave the stored value untouched.
type UpdateShippingOptionRequest struct {
	Name   *string        `json:"name,omitempty"`
	Amount *int64         `json:"amount,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// TokenRequest is the body of POST /vendor/auth/token: seller credentials
// exchanged for a signed vendor JWT.
type TokenRequest struct {
	// Email is the seller account address.
	Email string `json:"email"`

	// APIKey is the plaintext API key; compared against the stored
	// bcrypt hash.
	APIKey string `json:"api_key"`
}

// ListShippingOptionsFilter carries the query-string filters and pagination
// settings of GET /vendor/service-zones/{id}/shipping-options, parsed
// upstream of the repository.
type ListShippingOptionsFilter struct {
	// ServiceZoneID restricts the result to one zone. Always set from the
	// URL path.
	ServiceZoneID string

	// Name filters by exact option name when non-empty.
	Name string

	// Query filters by case-insensitive name substring when non-empty.
	Query string

	// PriceType filters by price type when non-empty.
	PriceType string

	// Limit is the page size. The transport layer applies the default and
	// the upper bound before the filter reaches storage.
	Limit uint64

	// Offset is the number of records to skip.
	Offset uint64
}
