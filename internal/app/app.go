// internal/app/app.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"weather-mcp/internal/config"
	"weather-mcp/internal/gateway"
	mcphandlers "weather-mcp/internal/handlers/mcp"
	"weather-mcp/internal/mcp"
	"weather-mcp/pkg/weather"
)

// App holds the main router.
type App struct {
	Router *mux.Router
}

// New wires the weather client, the gateway pool, the tool registry and
// all routes.
func New(cfg *config.Config, logger zerolog.Logger) *App {
	r := mux.NewRouter()

	client := weather.NewClient(cfg.WeatherAPIBaseURL, cfg.UserAgent)
	gw := gateway.New(client, cfg.GatewayWorkers, logger)
	mcphandlers.SetGateway(gw)

	RegisterTools()
	RegisterRoutes(r)

	return &App{Router: r}
}

// RegisterTools installs the tool handlers into the MCP registry. Every
// entry of the embedded tools.json must be registered here.
func RegisterTools() {
	mcp.Register("get_forecast", http.HandlerFunc(mcphandlers.GetForecastHandler))
	mcp.Register("get_alerts", http.HandlerFunc(mcphandlers.GetAlertsHandler))
}
