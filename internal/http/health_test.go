package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/combo-pricing-service/internal/circuitbreaker"
)

func TestHealthHandler_Readiness(t *testing.T) {
	tripped := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{Name: "menu_items", FailureThreshold: 1, Timeout: time.Minute})
		_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })
		return cb
	}

	tests := []struct {
		name         string
		setup        func(*HealthHandler)
		wantStatus   int
		wantState    string
		wantCheckKey string
	}{
		{
			name:         "no checkers",
			setup:        func(*HealthHandler) {},
			wantStatus:   http.StatusOK,
			wantState:    "ok",
			wantCheckKey: "service",
		},
		{
			name: "healthy database",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(func(ctx context.Context) error {
					_, hasDeadline := ctx.Deadline()
					if !hasDeadline {
						return errors.New("no deadline")
					}
					return nil
				}))
			},
			wantStatus:   http.StatusOK,
			wantState:    "ok",
			wantCheckKey: "mongodb",
		},
		{
			name: "database down",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error {
					return errors.New("server selection timeout")
				}))
			},
			wantStatus:   http.StatusServiceUnavailable,
			wantState:    "degraded",
			wantCheckKey: "mongodb",
		},
		{
			name: "closed circuit",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("menu_items", circuitbreaker.New(circuitbreaker.DefaultConfig()))
			},
			wantStatus:   http.StatusOK,
			wantState:    "ok",
			wantCheckKey: "menu_items_circuit",
		},
		{
			name: "open circuit",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("menu_items", tripped())
			},
			wantStatus:   http.StatusServiceUnavailable,
			wantState:    "degraded",
			wantCheckKey: "menu_items_circuit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler()
			tt.setup(h)
			router := gin.New()
			h.Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, tt.wantStatus, w.Code)

			var body struct {
				Status string                 `json:"status"`
				Checks map[string]interface{} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantState, body.Status)
			assert.Contains(t, body.Checks, tt.wantCheckKey)
		})
	}
}

func TestHealthHandler_RegisterNil(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", nil)
	h.RegisterCircuitBreaker("menu_items", nil)

	assert.Empty(t, h.checkers)
	assert.Empty(t, h.circuitBreakers)
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
