package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
	"github.com/guttosm/combo-pricing-service/internal/i18n"
	"github.com/guttosm/combo-pricing-service/internal/logger"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeySubject is the subject recorded for callers authenticated by API key.
	APIKeySubject = "api-key"
)

// AuthConfig wires the credential verifiers.
type AuthConfig struct {
	Tokens service.TokenVerifier
	Keys   service.APIKeyVerifier
	// APIKeyRoles are granted to API key callers, which carry no token claims.
	APIKeyRoles []string
}

// Authenticate accepts either a bearer JWT or an X-API-Key header. A bearer
// token is checked first; a request carrying neither is rejected.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present, wellFormed := bearerToken(c)
		if present && cfg.Tokens != nil {
			if !wellFormed {
				abortUnauthorized(c, i18n.ErrKeyInvalidToken)
				return
			}
			claims, err := cfg.Tokens.VerifyToken(c.Request.Context(), token)
			if err != nil {
				log := logger.WithRequestID(GetRequestID(c))
				log.Debug().Err(err).Msg("bearer token rejected")
				abortUnauthorized(c, i18n.ErrKeyInvalidToken)
				return
			}
			setClaims(c, claims)
			c.Next()
			return
		}

		if key := c.GetHeader(APIKeyHeader); key != "" && cfg.Keys != nil && cfg.Keys.Enabled() {
			if !cfg.Keys.VerifyAPIKey(key) {
				abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
				return
			}
			setClaims(c, &dto.Claims{Subject: APIKeySubject, Roles: cfg.APIKeyRoles})
			c.Next()
			return
		}

		if cfg.Tokens != nil {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}
		abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}
