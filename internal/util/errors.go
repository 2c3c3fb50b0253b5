// internal/util/errors.go
// Structured error bodies for protocol-level (4xx) failures

package util

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// AppError is the JSON body for validation and lookup failures. These
// bypass the response envelope: callers branch on the HTTP status code.
type AppError struct {
	Code    string `json:"error"`   // e.g., "validation_error", "not_found"
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Validation(field, msg string) AppError {
	return AppError{Code: "validation_error", Message: msg, Field: field}
}

func NotFound(msg string) AppError {
	return AppError{Code: "not_found", Message: msg}
}

func MissingParameter(key string) AppError {
	return AppError{Code: "missing_parameter", Message: "Missing required parameter: " + key, Field: key}
}

// WriteError sends an AppError with the given status.
func WriteError(w http.ResponseWriter, status int, e AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}

// WriteJSON sends any payload as JSON with status 200.
func WriteJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
