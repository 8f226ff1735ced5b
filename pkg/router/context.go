package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Context is passed to pages and layouts. It exposes the matched route and
// lets a page set the response status, the document title or redirect.
type Context struct {
	// Request is the request being served.
	Request *http.Request

	writer       http.ResponseWriter
	base         string
	status       int
	title        string
	redirect     string
	redirectCode int
}

func newContext(w http.ResponseWriter, req *http.Request, base string, status int) *Context {
	return &Context{Request: req, writer: w, base: base, status: status}
}

// Param returns the value of a URL parameter, "" if absent.
func (c *Context) Param(name string) string {
	return Param(c.Request, name)
}

// Params returns all URL parameters of the match.
func (c *Context) Params() map[string]string {
	return Params(c.Request)
}

// Query returns the first value of a query parameter.
func (c *Context) Query(name string) string {
	return c.Request.URL.Query().Get(name)
}

// Location returns the request path relative to the base path.
func (c *Context) Location() string {
	p := strings.TrimPrefix(c.Request.URL.Path, c.base)
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	return p
}

// Base returns the router's base path.
func (c *Context) Base() string { return c.base }

// Href resolves an absolute route path against the base path.
// Other values are returned unchanged.
func (c *Context) Href(path string) string {
	return joinPath(c.base, path)
}

// Header returns the response header map.
func (c *Context) Header() http.Header {
	return c.writer.Header()
}

// SetStatus sets the response status code.
func (c *Context) SetStatus(code int) { c.status = code }

// Status returns the response status code.
func (c *Context) Status() int { return c.status }

// SetTitle overrides the document title for this response.
func (c *Context) SetTitle(title string) { c.title = title }

// Redirect replaces the page with a redirect to another route. to is
// relative to the base path. The status defaults to 302 Found.
func (c *Context) Redirect(to string, code ...int) {
	c.redirect = c.Href(to)
	c.redirectCode = http.StatusFound
	if len(code) > 0 {
		c.redirectCode = code[0]
	}
}

// Bind fills the `param`-tagged fields of target, a pointer to a struct,
// from the URL parameters.
func (c *Context) Bind(target any) error {
	return bindParams(c.Params(), target)
}

// Param returns the value of a URL parameter of r, "" if absent.
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// Params returns all URL parameters of r. When nested routers capture the
// same name the innermost value wins.
func Params(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return map[string]string{}
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
