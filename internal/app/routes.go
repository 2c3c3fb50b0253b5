// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "weather-mcp/internal/handlers/http"
	mcphandlers "weather-mcp/internal/handlers/mcp"
)

// RegisterRoutes adds all HTTP routes. Handlers only adapt payloads to
// component calls; no business logic lives here.
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/forecast", mcphandlers.GetForecastHandler).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/alerts", mcphandlers.GetAlertsHandler).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/health", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tools", hh.ToolsHandler).Methods(http.MethodGet)

	r.HandleFunc("/prompts", hh.ListPromptsHandler).Methods(http.MethodGet)
	r.HandleFunc("/prompts/categories", hh.PromptCategoriesHandler).Methods(http.MethodGet)
	r.HandleFunc("/prompts/{name}", hh.GetPromptHandler).Methods(http.MethodPost, http.MethodOptions)

	// Direct tool dispatch by registry name (debug/manual curl friendly)
	r.HandleFunc("/mcp/{tool}", hh.ToolDispatchHandler).Methods(http.MethodPost, http.MethodOptions)

	// Preflight catch-all
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)
}
