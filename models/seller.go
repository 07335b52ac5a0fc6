package models

import "time"

// Seller represents a marketplace vendor account. A seller owns service zones
// and, through link records, the shipping options configured against them.
// Sensitive fields must never be exposed outside trusted boundaries.
type Seller struct {
	// ID is the prefixed unique identifier of the seller (e.g. "sel_…").
	ID string `json:"id"`

	// Email is the unique contact address used for token exchange.
	Email string `json:"email"`

	// Name is the display name of the seller's storefront.
	Name string `json:"name"`

	// MemberID is the identifier of the authenticated actor behind this
	// seller account. It is carried as the JWT "sub" claim and used to
	// resolve the acting seller on every vendor request.
	MemberID string `json:"member_id"`

	// APIKeyHash stores the bcrypt hash of the seller's API key.
	// Never exposed via JSON; used only during token exchange.
	APIKeyHash string `json:"-"`

	// CreatedAt is the timestamp when the seller account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Seller model.
func (s Seller) TableName() string {
	return "sellers"
}
