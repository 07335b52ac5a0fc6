package models

// ShippingOptionResponse is the envelope of the create and single-fetch
// endpoints. The entity is a projection map so that the caller-requested
// field selection survives serialization untouched.
type ShippingOptionResponse struct {
	ShippingOption map[string]any `json:"shipping_option"`
}

// ShippingOptionListResponse is the envelope of the list endpoint: one page
// of options plus pagination metadata. Count is the total number of matching
// records, not the page length.
type ShippingOptionListResponse struct {
	ShippingOptions []ShippingOption `json:"shipping_options"`
	Count           int64            `json:"count"`
	Offset          uint64           `json:"offset"`
	Limit           uint64           `json:"limit"`
}

// SellerResponse is the envelope of GET /vendor/sellers/me.
type SellerResponse struct {
	Seller Seller `json:"seller"`
}

// TokenResponse is the envelope of POST /vendor/auth/token.
type TokenResponse struct {
	Token string `json:"token"`
}

// DeleteResponse reports a completed deletion in the conventional
// id/object/deleted triple.
type DeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// VersionResponse is the envelope of GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
}
