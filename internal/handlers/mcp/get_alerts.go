// internal/handlers/mcp/get_alerts.go
// MCP Tool: get_alerts - active weather alerts for a US state

package mcp

import (
	"net/http"

	"weather-mcp/internal/util"
)

type alertsReq struct {
	State *string `json:"state"`
}

// GetAlertsHandler validates the body and hands the fetch to the
// gateway. The state code itself is not validated; a bogus code is
// forwarded and the upstream error passes through in the envelope.
func GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	if gw == nil {
		http.Error(w, "weather gateway not configured", http.StatusServiceUnavailable)
		return
	}

	var in alertsReq
	if !decodeBody(w, r, &in) {
		return
	}
	if in.State == nil {
		util.WriteError(w, http.StatusUnprocessableEntity, util.Validation("state", "state is required"))
		return
	}

	util.WriteJSON(w, gw.FetchAlerts(*in.State))
}
