package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
)

// Pagination bounds for the list endpoint.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// createShippingOption handles POST /vendor/service-zones/{id}/shipping-options.
//
// The option is created with price_type "flat" and the path's zone id, linked
// to the acting seller in the same transaction, then re-read and returned
// through the caller's `fields` projection with status 201.
func (h *Handler) createShippingOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	seller, ok := utils.GetSellerFromContext(ctx)
	if !ok {
		log.Error().Msg("no seller in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	serviceZoneID := chi.URLParam(r, "id")

	var req models.CreateShippingOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	option, err := h.services.ShippingOptionService.Create(ctx, seller, serviceZoneID, req)
	if err != nil {
		log.Err(err).Str("service_zone_id", serviceZoneID).Msg("shipping option creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	fields := parseFields(r.URL.Query())

	utils.WriteJSON(w, models.ShippingOptionResponse{ShippingOption: option.Project(fields)}, http.StatusCreated)
}

// listShippingOptions handles GET /vendor/service-zones/{id}/shipping-options.
//
// Query parameters: name (exact), q (case-insensitive substring), price_type,
// limit (default 50, max 200), offset (default 0). The response always
// carries pagination metadata next to the page.
func (h *Handler) listShippingOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseListShippingOptionsQuery(chi.URLParam(r, "id"), r.URL.Query())
	if err != nil {
		log.Err(err).Msg("invalid list query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	options, count, err := h.services.ShippingOptionService.List(ctx, filter)
	if err != nil {
		log.Err(err).Str("service_zone_id", filter.ServiceZoneID).Msg("shipping option listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ShippingOptionListResponse{
		ShippingOptions: options,
		Count:           count,
		Offset:          filter.Offset,
		Limit:           filter.Limit,
	}, http.StatusOK)
}

// getShippingOption handles GET /vendor/shipping-options/{id}.
func (h *Handler) getShippingOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	seller, ok := utils.GetSellerFromContext(ctx)
	if !ok {
		log.Error().Msg("no seller in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	option, err := h.services.ShippingOptionService.Get(ctx, seller, id)
	if err != nil {
		log.Err(err).Str("shipping_option_id", id).Msg("shipping option fetch failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	fields := parseFields(r.URL.Query())

	utils.WriteJSON(w, models.ShippingOptionResponse{ShippingOption: option.Project(fields)}, http.StatusOK)
}

// updateShippingOption handles POST /vendor/shipping-options/{id}.
func (h *Handler) updateShippingOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	seller, ok := utils.GetSellerFromContext(ctx)
	if !ok {
		log.Error().Msg("no seller in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var req models.UpdateShippingOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	option, err := h.services.ShippingOptionService.Update(ctx, seller, id, req)
	if err != nil {
		log.Err(err).Str("shipping_option_id", id).Msg("shipping option update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	fields := parseFields(r.URL.Query())

	utils.WriteJSON(w, models.ShippingOptionResponse{ShippingOption: option.Project(fields)}, http.StatusOK)
}

// deleteShippingOption handles DELETE /vendor/shipping-options/{id}.
func (h *Handler) deleteShippingOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	seller, ok := utils.GetSellerFromContext(ctx)
	if !ok {
		log.Error().Msg("no seller in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.services.ShippingOptionService.Delete(ctx, seller, id); err != nil {
		log.Err(err).Str("shipping_option_id", id).Msg("shipping option deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{
		ID:      id,
		Object:  "shipping_option",
		Deleted: true,
	}, http.StatusOK)
}

// parseFields reads the comma-separated `fields` query parameter used for
// response projection. Empty entries are dropped.
func parseFields(query url.Values) []string {
	raw := query.Get("fields")
	if raw == "" {
		return nil
	}

	var fields []string
	for _, field := range strings.Split(raw, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// parseListShippingOptionsQuery builds the repository filter from the list
// endpoint's query string, applying the default page size and the upper
// bound.
func parseListShippingOptionsQuery(serviceZoneID string, query url.Values) (models.ListShippingOptionsFilter, error) {
	filter := models.ListShippingOptionsFilter{
		ServiceZoneID: serviceZoneID,
		Name:          query.Get("name"),
		Query:         query.Get("q"),
		PriceType:     query.Get("price_type"),
		Limit:         defaultListLimit,
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return models.ListShippingOptionsFilter{}, ErrInvalidLimitParam
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.ListShippingOptionsFilter{}, ErrInvalidOffsetParam
		}
		filter.Offset = offset
	}

	return filter, nil
}
