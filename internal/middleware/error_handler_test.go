package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "unwritten error becomes 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal_error",
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("logged only"))
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service_unavailable"})
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "service_unavailable",
		},
		{
			name:       "no error",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
