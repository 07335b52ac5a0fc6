package models

import "time"

// PriceTypeFlat is the only price type this API creates. The creation flow
// forces it regardless of the request body.
const PriceTypeFlat = "flat"

// ShippingOption is a configured shipping method a buyer can select at
// checkout: a name, a flat price and the service zone it covers.
type ShippingOption struct {
	// ID is the prefixed unique identifier of the option (e.g. "so_…").
	ID string `json:"id"`

	// Name is the buyer-facing label of the option (e.g. "Standard", "Express").
	Name string `json:"name"`

	// PriceType describes how the option is priced. Always "flat" for
	// options created through this API.
	PriceType string `json:"price_type"`

	// Amount is the flat price in the smallest currency unit (e.g. cents).
	Amount int64 `json:"amount"`

	// CurrencyCode is the ISO 4217 code of Amount (e.g. "usd", "eur").
	CurrencyCode string `json:"currency_code"`

	// ServiceZoneID identifies the zone this option belongs to.
	ServiceZoneID string `json:"service_zone_id"`

	// Data holds provider-specific settings as free-form JSON
	// (e.g. carrier identifiers, fulfillment hints).
	Data map[string]any `json:"data,omitempty"`

	// CreatedAt is the timestamp when the option was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ShippingOption model.
func (o ShippingOption) TableName() string {
	return "shipping_options"
}

// Project returns a map holding only the requested fields of the option.
// Field names follow the JSON representation. Unknown names are ignored;
// "id" is always included so the caller can address the entity. A nil or
// empty fields slice selects every field.
func (o ShippingOption) Project(fields []string) map[string]any {
	full := map[string]any{
		"id":              o.ID,
		"name":            o.Name,
		"price_type":      o.PriceType,
		"amount":          o.Amount,
		"currency_code":   o.CurrencyCode,
		"service_zone_id": o.ServiceZoneID,
		"data":            o.Data,
		"created_at":      o.CreatedAt,
		"updated_at":      o.UpdatedAt,
	}

	if len(fields) == 0 {
		return full
	}

	projected := map[string]any{"id": o.ID}
	for _, field := range fields {
		if value, ok := full[field]; ok {
			projected[field] = value
		}
	}

	return projected
}
