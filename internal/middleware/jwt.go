package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/internal/domain/dto"
)

const bearerPrefix = "Bearer "

// bearerToken extracts the token from "Authorization: Bearer <token>".
// ok is false when the header is present but malformed.
func bearerToken(c *gin.Context) (token string, present, ok bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false, false
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", true, false
	}
	token = strings.TrimSpace(header[len(bearerPrefix):])
	return token, true, token != ""
}

// GetClaims returns the claims of the authenticated caller, or nil.
func GetClaims(c *gin.Context) *dto.Claims {
	v, ok := c.Get(string(ClaimsKey))
	if !ok {
		return nil
	}
	claims, _ := v.(*dto.Claims)
	return claims
}

func setClaims(c *gin.Context, claims *dto.Claims) {
	c.Set(string(ClaimsKey), claims)
}
