// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The vendor-shipping Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/service"
	"github.com/marketcore/vendor-shipping/internal/store"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ShippingOptionService
// ─────────────────────────────────────────────

// mockShippingOptionService implements service.ShippingOptionService for
// unit tests. Each method field can be overridden per test case.
type mockShippingOptionService struct {
	createFn func(ctx context.Context, seller models.Seller, zoneID string, req models.CreateShippingOptionRequest) (models.ShippingOption, error)
	listFn   func(ctx context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error)
	getFn    func(ctx context.Context, seller models.Seller, id string) (models.ShippingOption, error)
	updateFn func(ctx context.Context, seller models.Seller, id string, req models.UpdateShippingOptionRequest) (models.ShippingOption, error)
	deleteFn func(ctx context.Context, seller models.Seller, id string) error
}

func (m *mockShippingOptionService) Create(ctx context.Context, seller models.Seller, zoneID string, req models.CreateShippingOptionRequest) (models.ShippingOption, error) {
	return m.createFn(ctx, seller, zoneID, req)
}

func (m *mockShippingOptionService) List(ctx context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error) {
	return m.listFn(ctx, filter)
}

func (m *mockShippingOptionService) Get(ctx context.Context, seller models.Seller, id string) (models.ShippingOption, error) {
	return m.getFn(ctx, seller, id)
}

func (m *mockShippingOptionService) Update(ctx context.Context, seller models.Seller, id string, req models.UpdateShippingOptionRequest) (models.ShippingOption, error) {
	return m.updateFn(ctx, seller, id, req)
}

func (m *mockShippingOptionService) Delete(ctx context.Context, seller models.Seller, id string) error {
	return m.deleteFn(ctx, seller, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithOptions builds a Handler with the given
// ShippingOptionService mock.
func newHandlerWithOptions(t *testing.T, options service.ShippingOptionService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ShippingOptionService: options,
	}
	return NewHandler(svcs, config.Server{HTTPAddress: ":8080"}, logger.Nop())
}

// vendorRequest builds a request carrying the seller in its context and the
// given chi {id} URL parameter, the way the real middleware chain and router
// would present it to a vendor handler.
func vendorRequest(t *testing.T, method, target, body string, seller models.Seller, paramID string) *http.Request {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)

	ctx := context.WithValue(req.Context(), utils.SellerCtxKey, seller)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", paramID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return req.WithContext(ctx)
}

var testSeller = models.Seller{ID: "sel_1", MemberID: "mem_1"}

// ─────────────────────────────────────────────
// createShippingOption
// ─────────────────────────────────────────────

func TestCreateShippingOption_Success(t *testing.T) {
	options := &mockShippingOptionService{
		createFn: func(_ context.Context, seller models.Seller, zoneID string, req models.CreateShippingOptionRequest) (models.ShippingOption, error) {
			assert.Equal(t, testSeller, seller)
			assert.Equal(t, "serzo_1", zoneID)
			assert.Equal(t, "Express Delivery", req.Name)
			return models.ShippingOption{
				ID:            "so_1",
				Name:          req.Name,
				PriceType:     models.PriceTypeFlat,
				Amount:        *req.Amount,
				CurrencyCode:  req.CurrencyCode,
				ServiceZoneID: zoneID,
			}, nil
		},
	}
	h := newHandlerWithOptions(t, options)

	body := `{"name":"Express Delivery","amount":1099,"currency_code":"eur"}`
	req := vendorRequest(t, http.MethodPost, "/vendor/service-zones/serzo_1/shipping-options", body, testSeller, "serzo_1")
	rec := httptest.NewRecorder()

	h.createShippingOption(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ShippingOptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "so_1", resp.ShippingOption["id"])
	assert.Equal(t, "flat", resp.ShippingOption["price_type"])
	assert.Equal(t, "serzo_1", resp.ShippingOption["service_zone_id"])
}

func TestCreateShippingOption_FieldsProjection(t *testing.T) {
	options := &mockShippingOptionService{
		createFn: func(_ context.Context, _ models.Seller, zoneID string, req models.CreateShippingOptionRequest) (models.ShippingOption, error) {
			return models.ShippingOption{ID: "so_1", Name: req.Name, Amount: *req.Amount, ServiceZoneID: zoneID}, nil
		},
	}
	h := newHandlerWithOptions(t, options)

	body := `{"name":"Express Delivery","amount":1099}`
	req := vendorRequest(t, http.MethodPost, "/vendor/service-zones/serzo_1/shipping-options?fields=name,amount", body, testSeller, "serzo_1")
	rec := httptest.NewRecorder()

	h.createShippingOption(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ShippingOptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// id is always present; only the requested fields accompany it
	assert.Len(t, resp.ShippingOption, 3)
	assert.Equal(t, "so_1", resp.ShippingOption["id"])
	assert.Equal(t, "Express Delivery", resp.ShippingOption["name"])
	assert.NotContains(t, resp.ShippingOption, "service_zone_id")
}

func TestCreateShippingOption_InvalidJSON(t *testing.T) {
	h := newHandlerWithOptions(t, &mockShippingOptionService{})

	req := vendorRequest(t, http.MethodPost, "/vendor/service-zones/serzo_1/shipping-options", "{invalid json}", testSeller, "serzo_1")
	rec := httptest.NewRecorder()

	h.createShippingOption(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestCreateShippingOption_UnknownZone(t *testing.T) {
	options := &mockShippingOptionService{
		createFn: func(_ context.Context, _ models.Seller, _ string, _ models.CreateShippingOptionRequest) (models.ShippingOption, error) {
			return models.ShippingOption{}, store.ErrServiceZoneNotFound
		},
	}
	h := newHandlerWithOptions(t, options)

	body := `{"name":"Express","amount":100}`
	req := vendorRequest(t, http.MethodPost, "/vendor/service-zones/serzo_missing/shipping-options", body, testSeller, "serzo_missing")
	rec := httptest.NewRecorder()

	h.createShippingOption(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateShippingOption_ValidationError(t *testing.T) {
	options := &mockShippingOptionService{
		createFn: func(_ context.Context, _ models.Seller, _ string, _ models.CreateShippingOptionRequest) (models.ShippingOption, error) {
			return models.ShippingOption{}, service.ErrValidationAmountRequired
		},
	}
	h := newHandlerWithOptions(t, options)

	body := `{"name":"Express"}`
	req := vendorRequest(t, http.MethodPost, "/vendor/service-zones/serzo_1/shipping-options", body, testSeller, "serzo_1")
	rec := httptest.NewRecorder()

	h.createShippingOption(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateShippingOption_NoSellerInContext(t *testing.T) {
	h := newHandlerWithOptions(t, &mockShippingOptionService{})

	req := httptest.NewRequest(http.MethodPost, "/vendor/service-zones/serzo_1/shipping-options", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.createShippingOption(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// listShippingOptions
// ─────────────────────────────────────────────

func TestListShippingOptions_Success(t *testing.T) {
	page := []models.ShippingOption{{ID: "so_1"}, {ID: "so_2"}}
	options := &mockShippingOptionService{
		listFn: func(_ context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error) {
			assert.Equal(t, "serzo_1", filter.ServiceZoneID)
			assert.Equal(t, uint64(defaultListLimit), filter.Limit)
			return page, 7, nil
		},
	}
	h := newHandlerWithOptions(t, options)

	req := vendorRequest(t, http.MethodGet, "/vendor/service-zones/serzo_1/shipping-options", "", testSeller, "serzo_1")
	rec := httptest.NewRecorder()

	h.listShippingOptions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ShippingOptionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.ShippingOptions, 2)
	assert.Equal(t, int64(7), resp.Count)
	assert.Equal(t, uint64(0), resp.Offset)
	assert.Equal(t, uint64(defaultListLimit), resp.Limit)
}

func TestListShippingOptions_PaginationWindow(t *testing.T) {
	options := &mockShippingOptionService{
		listFn: func(_ context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error) {
			assert.Equal(t, uint64(1), filter.Limit)
			assert.Equal(t, uint64(1), filter.Offset)
			return []models.ShippingOption{{ID: "so_2"}}, 3, nil
		},
	}
	h := newHandlerWithOptions(t, options)

	req := vendorRequest(t, http.MethodGet, "/vendor/service-zones/serzo_1/shipping-options?limit=1&offset=1", "", testSeller, "serzo_1")
	rec := httptest.NewRecorder()

	h.listShippingOptions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ShippingOptionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.ShippingOptions, 1)
	assert.Equal(t, int64(3), resp.Count)
	assert.Equal(t, uint64(1), resp.Offset)
	assert.Equal(t, uint64(1), resp.Limit)
}

func TestListShippingOptions_BadLimit(t *testing.T) {
	h := newHandlerWithOptions(t, &mockShippingOptionService{})

	req := vendorRequest(t, http.MethodGet, "/vendor/service-zones/serzo_1/shipping-options?limit=banana", "", testSeller, "serzo_1")
	rec := httptest.NewRecorder()

	h.listShippingOptions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListShippingOptions_UnknownZone(t *testing.T) {
	options := &mockShippingOptionService{
		listFn: func(_ context.Context, _ models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error) {
			return nil, 0, store.ErrServiceZoneNotFound
		},
	}
	h := newHandlerWithOptions(t, options)

	req := vendorRequest(t, http.MethodGet, "/vendor/service-zones/serzo_missing/shipping-options", "", testSeller, "serzo_missing")
	rec := httptest.NewRecorder()

	h.listShippingOptions(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// getShippingOption / updateShippingOption / deleteShippingOption
// ─────────────────────────────────────────────

func TestGetShippingOption_NotOwner(t *testing.T) {
	options := &mockShippingOptionService{
		getFn: func(_ context.Context, _ models.Seller, _ string) (models.ShippingOption, error) {
			return models.ShippingOption{}, service.ErrNotOptionOwner
		},
	}
	h := newHandlerWithOptions(t, options)

	req := vendorRequest(t, http.MethodGet, "/vendor/shipping-options/so_1", "", testSeller, "so_1")
	rec := httptest.NewRecorder()

	h.getShippingOption(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetShippingOption_NotFound(t *testing.T) {
	options := &mockShippingOptionService{
		getFn: func(_ context.Context, _ models.Seller, _ string) (models.ShippingOption, error) {
			return models.ShippingOption{}, store.ErrShippingOptionNotFound
		},
	}
	h := newHandlerWithOptions(t, options)

	req := vendorRequest(t, http.MethodGet, "/vendor/shipping-options/so_missing", "", testSeller, "so_missing")
	rec := httptest.NewRecorder()

	h.getShippingOption(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateShippingOption_Success(t *testing.T) {
	options := &mockShippingOptionService{
		updateFn: func(_ context.Context, _ models.Seller, id string, req models.UpdateShippingOptionRequest) (models.ShippingOption, error) {
			require.NotNil(t, req.Name)
			return models.ShippingOption{ID: id, Name: *req.Name}, nil
		},
	}
	h := newHandlerWithOptions(t, options)

	req := vendorRequest(t, http.MethodPost, "/vendor/shipping-options/so_1", `{"name":"Overnight"}`, testSeller, "so_1")
	rec := httptest.NewRecorder()

	h.updateShippingOption(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ShippingOptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Overnight", resp.ShippingOption["name"])
}

func TestDeleteShippingOption_Success(t *testing.T) {
	options := &mockShippingOptionService{
		deleteFn: func(_ context.Context, seller models.Seller, id string) error {
			assert.Equal(t, testSeller, seller)
			assert.Equal(t, "so_1", id)
			return nil
		},
	}
	h := newHandlerWithOptions(t, options)

	req := vendorRequest(t, http.MethodDelete, "/vendor/shipping-options/so_1", "", testSeller, "so_1")
	rec := httptest.NewRecorder()

	h.deleteShippingOption(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.DeleteResponse{ID: "so_1", Object: "shipping_option", Deleted: true}, resp)
}

// ─────────────────────────────────────────────
// Query parsing
// ─────────────────────────────────────────────

func TestParseListShippingOptionsQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    models.ListShippingOptionsFilter
		wantErr error
	}{
		{
			name:  "defaults",
			query: "",
			want:  models.ListShippingOptionsFilter{ServiceZoneID: "serzo_1", Limit: defaultListLimit},
		},
		{
			name:  "all filters",
			query: "name=Express&q=exp&price_type=flat&limit=10&offset=20",
			want:  models.ListShippingOptionsFilter{ServiceZoneID: "serzo_1", Name: "Express", Query: "exp", PriceType: "flat", Limit: 10, Offset: 20},
		},
		{
			name:  "limit capped at maximum",
			query: "limit=1000",
			want:  models.ListShippingOptionsFilter{ServiceZoneID: "serzo_1", Limit: maxListLimit},
		},
		{
			name:    "zero limit rejected",
			query:   "limit=0",
			wantErr: ErrInvalidLimitParam,
		},
		{
			name:    "negative offset rejected",
			query:   "offset=-1",
			wantErr: ErrInvalidOffsetParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			filter, err := parseListShippingOptionsQuery("serzo_1", values)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter)
		})
	}
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"absent", "", nil},
		{"single", "fields=name", []string{"name"}},
		{"multiple", "fields=name,amount", []string{"name", "amount"}},
		{"whitespace and empties dropped", "fields=name,%20,amount,", []string{"name", "amount"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parseFields(values))
		})
	}
}
