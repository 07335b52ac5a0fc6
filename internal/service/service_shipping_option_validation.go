package service

import (
	"strings"
	"unicode"

	"github.com/marketcore/vendor-shipping/models"
)

// validateCreateShippingOptionRequest checks the creation payload before any
// storage access. price_type is not validated because the creation flow
// forces it to "flat".
func validateCreateShippingOptionRequest(req models.CreateShippingOptionRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrValidationNameRequired
	}

	if req.Amount == nil {
		return ErrValidationAmountRequired
	}
	if *req.Amount < 0 {
		return ErrValidationAmountNegative
	}

	if req.CurrencyCode != "" && !isCurrencyCode(req.CurrencyCode) {
		return ErrValidationBadCurrencyCode
	}

	return nil
}

// isCurrencyCode reports whether s looks like an ISO 4217 code: exactly
// three ASCII letters.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
