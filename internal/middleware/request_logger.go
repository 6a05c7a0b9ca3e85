package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/logger"
)

// RequestLogger writes one structured line per request and, when sink is
// non-nil, ships the same record to MongoDB.
func RequestLogger(sink *AsyncLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		entry := newLogEntry(c, levelForStatus(status), "HTTP request")
		entry.StatusCode = status
		entry.Duration = latency.Milliseconds()
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}

		log := logger.WithRequestID(entry.RequestID)
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("method", entry.Method).
			Str("path", entry.Path).
			Str("route", c.FullPath()).
			Int("status_code", status).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("subject", entry.Subject).
			Msg("HTTP request")

		sink.Log(entry)
	}
}

// newLogEntry fills the request-scoped fields shared by request and audit logs.
func newLogEntry(c *gin.Context, level, message string) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if claims := GetClaims(c); claims != nil {
		entry.Subject = claims.Subject
		if len(claims.Roles) > 0 {
			entry.Role = claims.Roles[0]
		}
	}
	return entry
}

func levelForStatus(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "warn"
	default:
		return "info"
	}
}
