package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/service"
	"github.com/marketcore/vendor-shipping/internal/store"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSellerService implements service.SellerService for unit tests.
type mockSellerService struct {
	resolveFn func(ctx context.Context, actorID string) (models.Seller, error)
}

func (m *mockSellerService) ResolveByActorID(ctx context.Context, actorID string) (models.Seller, error) {
	return m.resolveFn(ctx, actorID)
}

func newHandlerWithSeller(t *testing.T, sellers service.SellerService) *Handler {
	t.Helper()
	svcs := &service.Services{
		SellerService: sellers,
	}
	return NewHandler(svcs, config.Server{HTTPAddress: ":8080"}, logger.Nop())
}

// requestWithActor returns a request whose context carries the given actor
// id, as the auth middleware would leave it.
func requestWithActor(actorID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/vendor/sellers/me", nil)
	if actorID == "" {
		return req
	}
	ctx := context.WithValue(req.Context(), utils.ActorIDCtxKey, actorID)
	return req.WithContext(ctx)
}

func TestWithSeller_ResolvesAndStoresSeller(t *testing.T) {
	want := models.Seller{ID: "sel_1", MemberID: "mem_1"}
	sellers := &mockSellerService{
		resolveFn: func(_ context.Context, actorID string) (models.Seller, error) {
			assert.Equal(t, "mem_1", actorID)
			return want, nil
		},
	}
	h := newHandlerWithSeller(t, sellers)

	var got models.Seller
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetSellerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.withSeller(next).ServeHTTP(rec, requestWithActor("mem_1"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok, "seller must be stored in the request context")
	assert.Equal(t, want, got)
}

// An authenticated actor with no seller account must be rejected before the
// handler runs.
func TestWithSeller_NoSellerForActor(t *testing.T) {
	sellers := &mockSellerService{
		resolveFn: func(_ context.Context, _ string) (models.Seller, error) {
			return models.Seller{}, store.ErrSellerNotFound
		},
	}
	h := newHandlerWithSeller(t, sellers)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a resolved seller")
	})

	rec := httptest.NewRecorder()
	h.withSeller(next).ServeHTTP(rec, requestWithActor("mem_orphan"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no seller associated")
}

func TestWithSeller_MissingActorID(t *testing.T) {
	h := newHandlerWithSeller(t, &mockSellerService{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without an actor id")
	})

	rec := httptest.NewRecorder()
	h.withSeller(next).ServeHTTP(rec, requestWithActor(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithSeller_ResolutionFailure(t *testing.T) {
	sellers := &mockSellerService{
		resolveFn: func(_ context.Context, _ string) (models.Seller, error) {
			return models.Seller{}, store.ErrExecutingQuery
		},
	}
	h := newHandlerWithSeller(t, sellers)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when resolution fails")
	})

	rec := httptest.NewRecorder()
	h.withSeller(next).ServeHTTP(rec, requestWithActor("mem_1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// Token extraction
// ─────────────────────────────────────────────

func TestGetTokenFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		cookie  string
		want    string
		wantErr error
	}{
		{"bearer header", "Bearer abc", "", "abc", nil},
		{"cookie fallback", "", "abc", "abc", nil},
		{"header wins over cookie", "Bearer fromheader", "fromcookie", "fromheader", nil},
		{"nothing presented", "", "", "", ErrEmptyAuthorizationHeader},
		{"header without token part", "Bearer", "", "", ErrInvalidAuthorizationHeader},
		{"header with empty token", "Bearer ", "", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/vendor/sellers/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: vendorSessionCookie, Value: tt.cookie})
			}

			got, err := getTokenFromRequest(req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
