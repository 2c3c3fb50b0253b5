// mcp/registry.go
// Registry mapping tool names to handler functions

package mcp

import (
	"net/http"
	"sync"
)

// Registry holds the tool name -> http.Handler map, guarded for safe
// access even though registration only happens at startup.
type Registry struct {
	mu   sync.RWMutex
	data map[string]http.Handler
}

var reg = &Registry{
	data: make(map[string]http.Handler),
}

// Register installs the handler for a tool. An existing handler under
// the same name is overwritten.
func Register(name string, h http.Handler) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.data[name] = h
}

// RegisterFunc registers a plain handler function.
func RegisterFunc(name string, fn func(http.ResponseWriter, *http.Request)) {
	Register(name, http.HandlerFunc(fn))
}

// Get returns the handler for a tool, or (nil, false) when unknown.
func Get(name string) (http.Handler, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	h, ok := reg.data[name]
	return h, ok
}

// List returns the names of all registered tools.
func List() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	keys := make([]string, 0, len(reg.data))
	for k := range reg.data {
		keys = append(keys, k)
	}
	return keys
}

// Serve dispatches the request to the named tool, replying 404 when the
// tool is not registered.
func Serve(w http.ResponseWriter, r *http.Request, name string) {
	if h, ok := Get(name); ok {
		h.ServeHTTP(w, r)
		return
	}
	http.Error(w, "tool not found: "+name, http.StatusNotFound)
}
