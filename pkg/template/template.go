// Package template renders text templates by substituting $name
// placeholders with caller-supplied values.
//
// The grammar is a single dollar sign followed by an identifier
// ([A-Za-z_][A-Za-z0-9_]*). There is no escaping, nesting or logic; this is
// textual substitution, not a template language.
package template

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnresolvedPlaceholder is returned when the template still contains a
// $name placeholder after substitution.
var ErrUnresolvedPlaceholder = errors.New("template: unresolved placeholder")

// RenderError wraps a rendering failure with the template path. The server
// converts these into 500 responses instead of letting them kill the
// connection goroutine.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("template: render %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *RenderError) Unwrap() error { return e.Err }

// Render reads the template file at path and substitutes every $name
// placeholder with vars["name"]. A missing file or a placeholder with no
// matching variable is a *RenderError.
func Render(path string, vars map[string]string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &RenderError{Path: path, Err: err}
	}
	out, err := Substitute(string(raw), vars)
	if err != nil {
		return "", &RenderError{Path: path, Err: err}
	}
	return out, nil
}

// Substitute applies $name substitution to an in-memory template. The text
// is scanned left to right; each placeholder is resolved against vars, so a
// variable named "user" can never clobber one named "username".
func Substitute(tmpl string, vars map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '$' || i+1 >= len(tmpl) || !isIdentStart(tmpl[i+1]) {
			b.WriteByte(tmpl[i])
			i++
			continue
		}
		j := i + 1
		for j < len(tmpl) && isIdent(tmpl[j]) {
			j++
		}
		name := tmpl[i+1 : j]
		value, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("%w: $%s", ErrUnresolvedPlaceholder, name)
		}
		b.WriteString(value)
		i = j
	}
	return b.String(), nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
