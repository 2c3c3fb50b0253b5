// internal/handlers/http/tools_handler.go
// Capability listing for MCP clients

package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"weather-mcp/internal/mcp"
	"weather-mcp/internal/util"
)

// ToolsHandler serves the static tool descriptors from the embedded
// catalog.
func ToolsHandler(w http.ResponseWriter, r *http.Request) {
	defs, err := mcp.LoadToolDefs()
	if err != nil {
		http.Error(w, "tool catalog unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}
	util.WriteJSON(w, mcp.ToolCatalog{Tools: defs})
}

// ToolDispatchHandler executes a registered tool by name, so clients
// can call POST /mcp/get_forecast with the same body as /forecast.
func ToolDispatchHandler(w http.ResponseWriter, r *http.Request) {
	mcp.Serve(w, r, mux.Vars(r)["tool"])
}
