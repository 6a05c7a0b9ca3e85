//go:build !integration

package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/middleware"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func baseConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Cache:   config.CacheConfig{Size: 100, TTL: time.Minute},
		Pricing: config.PricingConfig{Currency: "INR", MaxItemsPerCombo: 10},
		Log:     config.LogConfig{Level: "error"},
	}
}

func quote(router http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/combos/quote",
		bytes.NewBufferString(`{"original_price": 150, "discount": {"type": "percentage", "value": 20}}`))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInitializeApp_WithoutDatabase(t *testing.T) {
	a := InitializeApp(baseConfig())
	require.NotNil(t, a.Router)
	t.Cleanup(func() { assert.NoError(t, a.Close(context.Background())) })

	w := quote(a.Router, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"final_price":120`)

	t.Run("menu catalog is not mounted", func(t *testing.T) {
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu-items", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("price check is unavailable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/combos/price-check",
			bytes.NewBufferString(`{"stored_original_price": 10, "items": [{"menu_item_id": "x"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestInitializeApp_WithAPIKeyAuth(t *testing.T) {
	hash, err := service.HashAPIKey("console-key")
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Auth = config.AuthConfig{Enabled: true, APIKeyHashes: []string{hash}, AdminRole: "admin"}

	a := InitializeApp(cfg)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	assert.Equal(t, http.StatusUnauthorized, quote(a.Router, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, quote(a.Router, map[string]string{middleware.APIKeyHeader: "other"}).Code)
	assert.Equal(t, http.StatusOK, quote(a.Router, map[string]string{middleware.APIKeyHeader: "console-key"}).Code)
}
