// internal/handlers/http/prompts_handler.go
// Prompt catalog endpoints: listing, categories, and rendering

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"weather-mcp/internal/mcp"
	"weather-mcp/internal/prompts"
	"weather-mcp/internal/util"
)

// ListPromptsHandler dumps the full catalog.
func ListPromptsHandler(w http.ResponseWriter, r *http.Request) {
	templates := prompts.List()
	util.WriteJSON(w, mcp.OK(map[string]any{
		"templates": templates,
		"total":     len(templates),
	}))
}

// PromptCategoriesHandler groups template names by category.
func PromptCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, mcp.OK(prompts.Categories()))
}

type promptReq struct {
	Parameters map[string]any `json:"parameters"`
}

// promptResponse carries the raw template plus the rendered text.
// RenderedTemplate stays null when no parameters were supplied, which
// is distinct from an empty-string render.
type promptResponse struct {
	Success          bool              `json:"success"`
	Data             *prompts.Template `json:"data,omitempty"`
	RenderedTemplate *string           `json:"rendered_template"`
	Error            string            `json:"error,omitempty"`
}

// GetPromptHandler returns one template and, when parameters were
// supplied, its rendering. Unknown name is 404; a placeholder with no
// parameter value is 400 naming the key.
func GetPromptHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	tpl, ok := prompts.Get(name)
	if !ok {
		util.WriteError(w, http.StatusNotFound,
			util.NotFound("prompt template '"+name+"' not found"))
		return
	}

	var in promptReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		util.WriteError(w, http.StatusUnprocessableEntity,
			util.Validation("parameters", "invalid request body: "+err.Error()))
		return
	}

	var rendered *string
	if len(in.Parameters) > 0 {
		s, err := prompts.Render(tpl.Template, in.Parameters)
		if err != nil {
			var missing *prompts.MissingParameterError
			if errors.As(err, &missing) {
				util.WriteError(w, http.StatusBadRequest, util.MissingParameter(missing.Key))
				return
			}
			util.WriteError(w, http.StatusBadRequest, util.AppError{
				Code:    "render_error",
				Message: "Template rendering error: " + err.Error(),
			})
			return
		}
		rendered = &s
	}

	util.WriteJSON(w, promptResponse{
		Success:          true,
		Data:             &tpl,
		RenderedTemplate: rendered,
	})
}
