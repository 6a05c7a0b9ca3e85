// Package app provides logger initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger. It runs before any
// other component so connection errors are logged in the final format.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
	log.Debug().Str("level", cfg.Level).Bool("pretty", cfg.Pretty).Msg("logger initialized")
}
