package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/logger"
	"github.com/guttosm/combo-pricing-service/internal/mocks"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var out bytes.Buffer
	logger.InitWithWriter("debug", false, &out)
	t.Cleanup(func() { logger.Init("info", false) })

	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.MatchedBy(func(e *model.LogEntry) bool {
		return e.StatusCode == http.StatusNotFound &&
			e.Level == "warn" &&
			e.Path == "/api/menu-items/x" &&
			e.Subject == "ops" &&
			e.Role == "admin" &&
			e.RequestID != ""
	})).Return(nil).Once()

	sink := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1, WriteTimeout: time.Second})

	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		setClaims(c, &dto.Claims{Subject: "ops", Roles: []string{"admin"}})
	}, RequestLogger(sink))
	router.GET("/api/menu-items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu-items/x", nil))
	sink.Stop()

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, out.String(), `"route":"/api/menu-items/:id"`)
	assert.Contains(t, out.String(), `"level":"warn"`)
	svc.AssertExpectations(t)
}

func TestRequestLogger_NilSink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() { router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil)) })
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, "info", levelForStatus(200))
	assert.Equal(t, "warn", levelForStatus(429))
	assert.Equal(t, "error", levelForStatus(503))
}
