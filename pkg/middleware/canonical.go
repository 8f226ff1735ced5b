package middleware

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
)

// Path canonicalization errors.
var (
	ErrBackslashInPath      = stderrors.New("path contains backslash")
	ErrNullByteInPath       = stderrors.New("path contains null byte")
	ErrInvalidPercentEscape = stderrors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = stderrors.New("path escapes root via ..")
)

// CanonicalPath normalizes a URL path so every page has one address:
//   - trailing slashes are removed (except for "/")
//   - repeated slashes are collapsed
//   - "." segments are dropped and ".." segments resolved
//
// Backslashes, NUL bytes, malformed percent escapes and ".." above the root
// are rejected. It reports whether the result differs from the input.
func CanonicalPath(p string) (string, bool, error) {
	if p == "" {
		return "/", true, nil
	}
	if strings.Contains(p, "\\") {
		return "", false, ErrBackslashInPath
	}
	if strings.Contains(p, "\x00") || strings.Contains(strings.ToUpper(p), "%00") {
		return "", false, ErrNullByteInPath
	}
	if strings.Contains(p, "%") {
		if err := validatePercentEscapes(p); err != nil {
			return "", false, err
		}
	}

	var segs []string
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(segs) == 0 {
				return "", false, ErrPathEscapesRoot
			}
			segs = segs[:len(segs)-1]
		default:
			segs = append(segs, seg)
		}
	}

	out := "/" + strings.Join(segs, "/")
	return out, out != p, nil
}

func validatePercentEscapes(p string) error {
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			continue
		}
		if i+2 >= len(p) || !isHexDigit(p[i+1]) || !isHexDigit(p[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Canonical returns middleware that redirects GET and HEAD requests for a
// non-canonical path to its canonical form with 301, keeping the query.
// Other methods are served as is. Invalid paths get 400.
func Canonical(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default().With("component", "http")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.EscapedPath()
			canonical, changed, err := CanonicalPath(raw)
			if err != nil {
				logger.Debug("rejected path", "path", raw, "error", err)
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			if !changed || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
				next.ServeHTTP(w, r)
				return
			}
			target := canonical
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}
