// Package app contains the application setup for the inventory service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/retailkit/inventory/internal/config"
	"github.com/retailkit/inventory/internal/engine"
	"github.com/retailkit/inventory/internal/store"
	"github.com/retailkit/inventory/internal/transport/rest"
	"github.com/retailkit/inventory/pkg/server"
)

type Dependencies struct {
	Engine engine.Inventory
	Logger *slog.Logger
}

func SetupDependencies(logger *slog.Logger) *Dependencies {
	eng := engine.New(store.NewJSONStore())

	return &Dependencies{
		Engine: eng,
		Logger: logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the inventory service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps, cfg)
	return mux
}

// wireRoutes sets up the HTTP routes for the inventory service.
func wireRoutes(mux *chi.Mux, deps *Dependencies, cfg *config.Config) {
	inventoryHandler := rest.NewHandler(deps.Engine, deps.Logger, cfg.Store.Path)
	inventoryHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the inventory service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
