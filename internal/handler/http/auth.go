package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/service"
	"github.com/marketcore/vendor-shipping/internal/store"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
)

// issueToken handles POST /vendor/auth/token: seller credentials in, signed
// JWT out. The token is returned both in the response body and as the vendor
// session cookie so browser and API clients can use the same endpoint.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credentials provided")
			http.Error(w, "invalid credentials provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrSellerNotFound) || errors.Is(err, service.ErrWrongAPIKey):
			log.Err(err).Msg("unknown seller/wrong api key")
			http.Error(w, "invalid email/api key", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token exchange")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	http.SetCookie(w, &http.Cookie{
		Name:     vendorSessionCookie,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
