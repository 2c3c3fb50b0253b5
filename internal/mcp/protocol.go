// mcp/protocol.go
// Uniform response envelope for tool calls

package mcp

// Response is the envelope returned by every data-fetching operation.
// Exactly one of Data/Error is populated depending on Success; Error
// carries human-readable text, never a machine code.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a successful result.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a failure message.
func Fail(msg string) Response {
	return Response{Success: false, Error: msg}
}
