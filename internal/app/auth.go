// Package app provides authentication initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/middleware"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

// InitializeAuth builds the credential verifiers. It returns nil when
// authentication is disabled.
func InitializeAuth(cfg config.AuthConfig) *middleware.AuthConfig {
	if !cfg.Enabled {
		log.Warn().Msg("Authentication disabled - /api is open")
		return nil
	}

	auth := &middleware.AuthConfig{}

	if cfg.JWTSecretKey != "" {
		auth.Tokens = service.NewJWTVerifierFromConfig(cfg)
	}

	keys := service.NewAPIKeyVerifier(cfg.APIKeyHashes)
	if keys.Enabled() {
		auth.Keys = keys
		// API keys belong to operators, not console users.
		auth.APIKeyRoles = []string{cfg.AdminRole}
	}

	if auth.Tokens == nil && auth.Keys == nil {
		log.Error().Msg("Authentication enabled without JWT_SECRET_KEY or API_KEY_HASHES - every /api request will be rejected")
	}
	return auth
}
