package router

import (
	"strings"

	"github.com/bloxi-go/bloxi/internal/errors"
)

// ValidatePattern checks that pattern is a route pattern chi accepts:
// it starts with '/', its {param} segments are closed and named, and a '*'
// wildcard only appears at the end.
func ValidatePattern(pattern string) error {
	if pattern == "" || pattern[0] != '/' {
		return invalidPattern(pattern, "must begin with '/'")
	}

	depth := 0
	start := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case '}':
			depth--
			if depth < 0 {
				return invalidPattern(pattern, "has an unmatched '}'")
			}
			if depth == 0 {
				name, _, _ := strings.Cut(pattern[start:i], ":")
				if strings.TrimSpace(name) == "" {
					return invalidPattern(pattern, "has a parameter without a name")
				}
			}
		case '*':
			if depth == 0 && i != len(pattern)-1 {
				return invalidPattern(pattern, "has a '*' wildcard before the end")
			}
		}
	}
	if depth != 0 {
		return invalidPattern(pattern, "has an unclosed '{'")
	}
	return nil
}

func invalidPattern(pattern, reason string) *errors.Error {
	return errors.New("E201").
		WithDetail("Route pattern " + quote(pattern) + " " + reason + ".").
		WithSuggestion(`Use chi pattern syntax, e.g. "/users/{id}" or "/files/*".`)
}

func quote(s string) string {
	return `"` + s + `"`
}
