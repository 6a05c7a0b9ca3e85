package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/mocks"
)

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())

	assert.Nil(t, al)
	assert.False(t, al.Log(&model.LogEntry{}))
	assert.NotPanics(t, al.Stop)
	assert.Equal(t, AsyncLoggerStats{}, al.Stats())
}

func TestAsyncLogger_WritesAndDrains(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.MatchedBy(func(e *model.LogEntry) bool {
		return e.Message == "ok"
	})).Return(nil)
	svc.On("CreateLog", mock.Anything, mock.MatchedBy(func(e *model.LogEntry) bool {
		return e.Message == "fail"
	})).Return(errors.New("mongo down"))

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 2, WriteTimeout: time.Second})

	for i := 0; i < 5; i++ {
		assert.True(t, al.Log(&model.LogEntry{Message: "ok"}))
	}
	assert.True(t, al.Log(&model.LogEntry{Message: "fail"}))
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(6), stats.Enqueued)
	assert.Equal(t, int64(5), stats.Written)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Zero(t, stats.Dropped)

	assert.False(t, al.Log(&model.LogEntry{Message: "late"}))
	assert.Equal(t, int64(1), al.Stats().Dropped)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, WriteTimeout: time.Second})

	accepted := 0
	for i := 0; i < 10; i++ {
		if al.Log(&model.LogEntry{Message: "burst"}) {
			accepted++
		}
	}
	close(release)
	al.Stop()

	stats := al.Stats()
	assert.LessOrEqual(t, accepted, 2)
	assert.Equal(t, int64(10-accepted), stats.Dropped)
	assert.Equal(t, int64(accepted), stats.Written)
}

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 4, cfg.NumWorkers)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}
