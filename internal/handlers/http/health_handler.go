// internal/handlers/http/health_handler.go
// Health check; always healthy regardless of upstream availability

package http

import (
	"encoding/json"
	"net/http"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}{
		Status:  "healthy",
		Service: "weather-mcp-server",
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
