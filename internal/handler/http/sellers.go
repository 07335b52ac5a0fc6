package http

import (
	"net/http"

	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
)

// getCurrentSeller handles GET /vendor/sellers/me. The seller middleware has
// already resolved the account, so this is a context read.
func (h *Handler) getCurrentSeller(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	seller, ok := utils.GetSellerFromContext(r.Context())
	if !ok {
		log.Error().Msg("no seller in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.SellerResponse{Seller: seller}, http.StatusOK)
}
