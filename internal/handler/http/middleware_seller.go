package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/store"
	"github.com/marketcore/vendor-shipping/internal/utils"
)

// withSeller resolves the seller account behind the authenticated actor id
// and stores it in the request context under [utils.SellerCtxKey].
//
// It must run after the auth middleware. An actor with no associated seller
// is rejected with HTTP 401 before any handler executes, so vendor handlers
// can take the seller from the context unconditionally.
func (h *Handler) withSeller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		actorID, ok := utils.GetActorIDFromContext(ctx)
		if !ok || actorID == "" {
			log.Error().Msg("no actor id in request context")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		seller, err := h.services.SellerService.ResolveByActorID(ctx, actorID)
		if err != nil {
			if errors.Is(err, store.ErrSellerNotFound) {
				log.Err(err).Str("actor_id", actorID).Msg("no seller associated with actor")
				http.Error(w, "no seller associated with the authenticated actor", http.StatusUnauthorized)
				return
			}

			log.Err(err).Str("actor_id", actorID).Msg("seller resolution failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.SellerCtxKey, seller)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
