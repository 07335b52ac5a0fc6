package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongAPIKey         = errors.New("wrong api key")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotOptionOwner = errors.New("shipping option belongs to another seller")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// Validation errors wrap ErrInvalidDataProvided so transport code can match
// the whole family with a single errors.Is check.
var (
	ErrValidationNameRequired    = fmt.Errorf("%w: name is required", ErrInvalidDataProvided)
	ErrValidationAmountRequired  = fmt.Errorf("%w: amount is required for flat rate prices", ErrInvalidDataProvided)
	ErrValidationAmountNegative  = fmt.Errorf("%w: amount must not be negative", ErrInvalidDataProvided)
	ErrValidationBadCurrencyCode = fmt.Errorf("%w: currency_code must be a 3-letter ISO 4217 code", ErrInvalidDataProvided)
)
