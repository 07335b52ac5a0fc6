// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The vendor-shipping Authors

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// vendor token from a request. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries neither an "Authorization" header nor a vendor session
	// cookie.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Sentinel errors for malformed pagination parameters on list endpoints.
var (
	ErrInvalidLimitParam  = errors.New("`limit` must be a positive integer")
	ErrInvalidOffsetParam = errors.New("`offset` must be a non-negative integer")
)
