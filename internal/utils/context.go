// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// prefixed entity identifiers, and other common operations.
package utils

import (
	"context"

	"github.com/marketcore/vendor-shipping/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorIDCtxKey is the key used to store the authenticated actor identifier
// in the context. Populated by the auth middleware after token validation.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ActorIDCtxKey, "mem_01H…")
var ActorIDCtxKey = contextKey("actorID")

// SellerCtxKey is the key used to store the resolved seller in the context.
// Populated by the seller-resolution middleware after the actor id has been
// mapped to a seller account.
var SellerCtxKey = contextKey("seller")

// GetActorIDFromContext retrieves the authenticated actor identifier from
// the context.
//
// Returns the actor id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetActorIDFromContext(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(ActorIDCtxKey).(string)
	return actorID, ok
}

// GetSellerFromContext retrieves the resolved seller from the context.
//
// Returns the seller and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSellerFromContext(ctx context.Context) (models.Seller, bool) {
	seller, ok := ctx.Value(SellerCtxKey).(models.Seller)
	return seller, ok
}
