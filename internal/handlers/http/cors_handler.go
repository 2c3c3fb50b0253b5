// internal/handlers/http/cors_handler.go
package http

import "net/http"

// PreflightHandler answers 204 for OPTIONS; CORS headers come from the
// middleware.
func PreflightHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
