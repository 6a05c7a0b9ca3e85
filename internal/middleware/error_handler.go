package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
	"github.com/guttosm/combo-pricing-service/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and answers 500 when the
// handler left the response unwritten.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		log := logger.WithRequestID(requestID)
		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("request error")
		}

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
