// Package main is the entry point for the combo-pricing-service application.
//
// @title           Combo Pricing API
// @version         1.0.0
// @description     Prices food-ordering combos: discount amount, final price and price drift against the menu catalog.
//
//	Discount values are clamped to their valid range; malformed input degrades to no discount.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/combo-pricing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Operator API key. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <jwt>" issued by the platform identity service.
//
// @tag.name        Combos
// @tag.description Combo discount and price operations
//
// @tag.name        Menu
// @tag.description Menu item price catalog
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/combo-pricing-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
