// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/combo-pricing-service/config"
	"github.com/guttosm/combo-pricing-service/internal/http"
)

// App is the wired service.
type App struct {
	Router *gin.Engine

	database *DatabaseComponents
	services *ServiceComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(cfg.Database)
	services := InitializeServices(cfg, db)
	routerComponents := InitializeRouter(cfg, services, db)

	return &App{
		Router: http.NewRouter(
			routerComponents.ComboHandler,
			routerComponents.MenuHandler,
			routerComponents.HealthHandler,
			routerComponents.Config,
		),
		database: db,
		services: services,
		router:   routerComponents,
	}
}

// Close releases resources in reverse start order: pending request logs are
// flushed before MongoDB disconnects.
func (a *App) Close(ctx context.Context) error {
	a.router.Close()
	a.services.Close()
	return a.database.Close(ctx)
}
