package models

import "time"

// SellerShippingOptionLink is the association record connecting a shipping
// option to the seller that owns it. An option counts as vendor-owned only
// once its link row exists; creation writes the option and the link in a
// single database transaction so no reader can observe one without the other.
type SellerShippingOptionLink struct {
	// SellerID references the owning seller.
	SellerID string `json:"seller_id"`

	// ShippingOptionID references the owned shipping option.
	// Unique: an option has at most one owner.
	ShippingOptionID string `json:"shipping_option_id"`

	// CreatedAt is the timestamp when the link was established.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SellerShippingOptionLink model.
func (l SellerShippingOptionLink) TableName() string {
	return "seller_shipping_option_links"
}
