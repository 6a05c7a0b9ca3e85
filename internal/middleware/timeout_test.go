package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Timeout(20 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	router.GET("/fast", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.True(t, hasDeadline)
		c.String(http.StatusOK, "ok")
	})
	router.GET("/slow-written", func(c *gin.Context) {
		<-c.Request.Context().Done()
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service_unavailable"})
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/slow", http.StatusGatewayTimeout, "timeout"},
		{"/fast", http.StatusOK, "ok"},
		{"/slow-written", http.StatusServiceUnavailable, "service_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestTimeout_DefaultWhenNonPositive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Timeout(0))
	router.GET("/test", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(DefaultRequestTimeout), deadline, time.Second)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
