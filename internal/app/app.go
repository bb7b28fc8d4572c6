// Package app wires the portal's configuration, logger, client, and handlers.
package app

import (
	"github.com/atlasops/atlas-console/internal/client"
	"github.com/atlasops/atlas-console/internal/common"
	"github.com/atlasops/atlas-console/internal/config"
	"github.com/atlasops/atlas-console/internal/handlers"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	// HTTP handlers
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	ToolsHandler   *handlers.ToolsHandler
	EventsHandler  *handlers.EventsHandler
	RoutingHandler *handlers.RoutingHandler
	AlertsHandler  *handlers.AlertsHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.initHandlers()

	logger.Info().
		Str("api_url", cfg.API.URL).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	atlasClient := client.NewAtlasClient(a.Config.API.URL)

	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.ToolsHandler = handlers.NewToolsHandler(a.Logger)
	a.EventsHandler = handlers.NewEventsHandler(a.Logger, atlasClient)
	a.RoutingHandler = handlers.NewRoutingHandler(a.Logger, atlasClient)
	a.AlertsHandler = handlers.NewAlertsHandler(a.Logger, atlasClient)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
