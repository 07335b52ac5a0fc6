package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init assembles the chi router.
//
// The base middleware chain is statically ordered: trace-id first (every
// later entry logs with the request-scoped logger), then request logging,
// metrics, gzip, rate limiting, and panic recovery. The vendor group adds
// token authentication followed by seller resolution; the seller middleware
// must run after auth (it needs the actor id) and before any vendor handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	baseChain := []func(http.Handler) http.Handler{
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		withGZip,
		h.withRateLimit,
		middleware.Recoverer,
	}
	router.Use(baseChain...)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/vendor/auth/token", h.issueToken)
		r.Get("/api/version/", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	// vendor routes: token auth, then seller resolution
	router.Group(func(r chi.Router) {
		vendorChain := []func(http.Handler) http.Handler{
			h.auth,
			h.withSeller,
		}
		r.Use(vendorChain...)

		r.Get("/vendor/sellers/me", h.getCurrentSeller)

		r.Post("/vendor/service-zones/{id}/shipping-options", h.createShippingOption)
		r.Get("/vendor/service-zones/{id}/shipping-options", h.listShippingOptions)

		r.Get("/vendor/shipping-options/{id}", h.getShippingOption)
		r.Post("/vendor/shipping-options/{id}", h.updateShippingOption)
		r.Delete("/vendor/shipping-options/{id}", h.deleteShippingOption)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
