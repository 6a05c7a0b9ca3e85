package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := strings.Repeat(`{"final_price":120}`, 100)
	router := gin.New()
	router.Use(Compression())
	router.GET("/api/combos", func(c *gin.Context) { c.String(http.StatusOK, body) })
	router.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, body) })

	tests := []struct {
		name           string
		path           string
		acceptEncoding string
		wantGzip       bool
	}{
		{"gzip accepted", "/api/combos", "gzip", true},
		{"gzip among others", "/api/combos", "gzip, deflate", true},
		{"no accept encoding", "/api/combos", "", false},
		{"metrics excluded", "/metrics", "gzip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, body, w.Body.String())
			}
		})
	}
}
