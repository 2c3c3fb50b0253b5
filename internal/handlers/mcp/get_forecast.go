// internal/handlers/mcp/get_forecast.go
// MCP Tool: get_forecast - weather forecast for a coordinate pair

package mcp

import (
	"net/http"

	"weather-mcp/internal/util"
)

type forecastReq struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// GetForecastHandler validates the body and hands the fetch to the
// gateway. Upstream failures still answer 200: the failure lives inside
// the envelope.
func GetForecastHandler(w http.ResponseWriter, r *http.Request) {
	if gw == nil {
		http.Error(w, "weather gateway not configured", http.StatusServiceUnavailable)
		return
	}

	var in forecastReq
	if !decodeBody(w, r, &in) {
		return
	}
	if in.Latitude == nil {
		util.WriteError(w, http.StatusUnprocessableEntity, util.Validation("latitude", "latitude is required"))
		return
	}
	if in.Longitude == nil {
		util.WriteError(w, http.StatusUnprocessableEntity, util.Validation("longitude", "longitude is required"))
		return
	}

	util.WriteJSON(w, gw.FetchForecast(*in.Latitude, *in.Longitude))
}
