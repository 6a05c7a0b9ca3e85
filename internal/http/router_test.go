package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/combo-pricing-service/internal/middleware"
	"github.com/guttosm/combo-pricing-service/internal/mocks"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

func newTestRouter(cfg RouterConfig, menu *MenuItemsHandler) *gin.Engine {
	return NewRouter(NewComboHandler(service.NewQuoteService()), menu, NewHealthHandler(), cfg)
}

func TestRouter_Endpoints(t *testing.T) {
	router := newTestRouter(DefaultRouterConfig(), nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"liveness", http.MethodGet, "/healthz", http.StatusOK},
		{"readiness", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"menu disabled without mongo", http.MethodGet, "/api/menu-items", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("quote is public without auth", func(t *testing.T) {
		w := postJSON(router, "/api/combos/quote", `{"original_price": 10}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRouter_APIKeyAuth(t *testing.T) {
	keys := &mocks.MockAPIKeyVerifier{}
	keys.On("Enabled").Return(true)
	keys.On("VerifyAPIKey", "good-key").Return(true)
	keys.On("VerifyAPIKey", "bad-key").Return(false)

	cfg := DefaultRouterConfig()
	cfg.Auth = &middleware.AuthConfig{Keys: keys, APIKeyRoles: []string{cfg.AdminRole}}
	router := newTestRouter(cfg, nil)

	tests := []struct {
		name       string
		key        string
		wantStatus int
		wantMsg    string
	}{
		{"valid key", "good-key", http.StatusOK, ""},
		{"invalid key", "bad-key", http.StatusUnauthorized, "Invalid API key"},
		{"missing key", "", http.StatusUnauthorized, "API key is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.key != "" {
				headers = []string{middleware.APIKeyHeader, tt.key}
			}
			w := postJSON(router, "/api/combos/quote", `{"original_price": 10}`, headers...)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, w).Message)
			}
		})
	}

	t.Run("health stays public", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_APIKeyGrantsAdmin(t *testing.T) {
	keys := &mocks.MockAPIKeyVerifier{}
	keys.On("Enabled").Return(true)
	keys.On("VerifyAPIKey", "ops-key").Return(true)

	catalog := &mocks.MockMenuCatalog{}
	catalog.On("Delete", mock.Anything, paneerID).Return(nil).Once()
	defer catalog.AssertExpectations(t)

	cfg := DefaultRouterConfig()
	cfg.Auth = &middleware.AuthConfig{Keys: keys, APIKeyRoles: []string{cfg.AdminRole}}
	router := newTestRouter(cfg, NewMenuItemsHandler(catalog, nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/menu-items/"+paneerID, nil)
	req.Header.Set(middleware.APIKeyHeader, "ops-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	cfg := DefaultRouterConfig()
	cfg.RateLimiter = limiter
	router := newTestRouter(cfg, nil)

	for i := 0; i < 2; i++ {
		w := postJSON(router, "/api/combos/quote", `{"original_price": 10}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, strconv.Itoa(1-i), w.Header().Get("X-RateLimit-Remaining"))
	}

	w := postJSON(router, "/api/combos/quote", `{"original_price": 10}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	t.Run("probes are not limited", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := newTestRouter(cfg, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.CORSOrigins = []string{"https://console.example.com"}
	router := newTestRouter(cfg, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/combos/quote", nil)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://console.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
