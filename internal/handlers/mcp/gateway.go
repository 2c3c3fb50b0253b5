// internal/handlers/mcp/gateway.go
// Gateway injection shared by the tool handlers

package mcp

import (
	"encoding/json"
	"errors"
	"net/http"

	"weather-mcp/internal/mcp"
	"weather-mcp/internal/util"
)

// Gateway is what the tool handlers need from the weather gateway.
type Gateway interface {
	FetchForecast(latitude, longitude float64) mcp.Response
	FetchAlerts(state string) mcp.Response
}

// injected from app
var gw Gateway

func SetGateway(g Gateway) {
	gw = g
}

// decodeBody decodes the request body, converting malformed or mistyped
// JSON into a 422 with the offending field named. Returns false when a
// response was already written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		field := "body"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field = typeErr.Field
		}
		util.WriteError(w, http.StatusUnprocessableEntity,
			util.Validation(field, "invalid request body: "+err.Error()))
		return false
	}
	return true
}
