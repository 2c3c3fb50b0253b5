// internal/mcp/tools_def.go
package mcp

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed tools.json
var toolsJSON []byte

// ToolDef describes one tool for MCP clients. Parameters is kept as raw
// JSON so the embedded JSON-Schema block is served byte-for-byte.
type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type ToolCatalog struct {
	Tools []ToolDef `json:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

// LoadToolDefs parses the embedded tool catalog once.
func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		var cat ToolCatalog
		if err := json.Unmarshal(toolsJSON, &cat); err != nil {
			toolDefsErr = err
			return
		}
		toolDefs = cat.Tools
	})
	return toolDefs, toolDefsErr
}
