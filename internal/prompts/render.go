// internal/prompts/render.go
// Placeholder substitution for prompt templates.

package prompts

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingParameterError names the placeholder that had no value.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return "missing required parameter: " + e.Key
}

// Render substitutes {identifier} placeholders from params in a single
// pass. Only tokens of the form {letter-or-underscore, then word chars}
// are recognized; anything else in braces is left verbatim, and
// substituted values are never re-scanned, so a value containing braces
// cannot inject a placeholder. A referenced key absent from params is a
// MissingParameterError.
func Render(template string, params map[string]any) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		if template[i] != '{' {
			b.WriteByte(template[i])
			i++
			continue
		}
		j := scanIdentifier(template, i+1)
		if j > i+1 && j < len(template) && template[j] == '}' {
			key := template[i+1 : j]
			v, ok := params[key]
			if !ok {
				return "", &MissingParameterError{Key: key}
			}
			b.WriteString(formatValue(v))
			i = j + 1
			continue
		}
		b.WriteByte('{')
		i++
	}
	return b.String(), nil
}

// scanIdentifier returns the index one past the identifier starting at
// pos, or pos if none starts there.
func scanIdentifier(s string, pos int) int {
	j := pos
	for j < len(s) {
		c := s[j]
		letter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if !letter && !(digit && j > pos) {
			break
		}
		j++
	}
	return j
}

// formatValue renders a parameter value the way it would read in prose:
// strings verbatim, JSON numbers without a trailing ".0".
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
