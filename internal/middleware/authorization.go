package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
)

// RequireRole lets through callers holding any of roles. It must run after
// Authenticate; unauthenticated requests get 401, others without the role 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		claims := GetClaims(c)
		if claims == nil {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyUnauthorized, locale)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(requestID))
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, locale)
		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewError(dto.ErrCodeForbidden, message).WithRequestID(requestID))
	}
}
