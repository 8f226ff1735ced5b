package router

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bloxi-go/bloxi/internal/errors"
	"github.com/bloxi-go/bloxi/pkg/bloxi"
	"github.com/bloxi-go/bloxi/pkg/render"
	"github.com/bloxi-go/bloxi/pkg/vdom"
)

// Page renders the content of a route.
type Page func(ctx *Context) *vdom.VNode

// Layout wraps the content of every page registered on a router and the
// routers nested in it.
type Layout func(ctx *Context, content *vdom.VNode) *vdom.VNode

// Route pairs a pattern with the page it renders.
type Route struct {
	Pattern string
	Page    Page
}

// Config configures a Router.
type Config struct {
	// Base is the path prefix every route is mounted under, e.g. "/app".
	Base string

	// Document configures the document each page is rendered into.
	Document render.DocumentConfig

	// Renderer configures HTML output.
	Renderer render.RendererConfig

	// App injects the stylesheet and mounts pages. Defaults to bloxi.NewApp().
	App *bloxi.App

	// Logger defaults to slog.Default() tagged with component=router.
	Logger *slog.Logger
}

// Router renders bloxi pages for matched request paths. Matching is
// delegated to a chi mux; a Router is an http.Handler.
type Router struct {
	mux      chi.Router
	parent   *Router
	prefix   string
	layouts  []Layout
	patterns map[string]bool
	shared   *shared
}

// shared is the state common to a router and the routers nested in it.
type shared struct {
	base     string
	root     chi.Router
	doc      render.DocumentConfig
	renderer *render.Renderer
	app      *bloxi.App
	logger   *slog.Logger
	notFound Page
}

// New creates a Router.
func New(cfg Config) *Router {
	s := &shared{
		base:     cleanBase(cfg.Base),
		doc:      cfg.Document,
		renderer: render.NewRenderer(cfg.Renderer),
		app:      cfg.App,
		logger:   cfg.Logger,
	}
	if s.app == nil {
		s.app = bloxi.NewApp()
	}
	if s.logger == nil {
		s.logger = slog.Default().With("component", "router")
	}

	mux := chi.NewRouter()
	mux.NotFound(s.handleNotFound)
	s.root = mux
	if s.base != "" {
		s.root = chi.NewRouter()
		s.root.NotFound(s.handleNotFound)
		s.root.Mount(s.base, mux)
	}

	return &Router{mux: mux, patterns: make(map[string]bool), shared: s}
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.shared.root.ServeHTTP(w, req)
}

// Base returns the base path, "" when routes are mounted at the root.
func (r *Router) Base() string { return r.shared.base }

// Use appends middleware to the router. Middleware must be added before the
// first route of the router it is added to.
func (r *Router) Use(middlewares ...func(http.Handler) http.Handler) {
	r.mux.Use(middlewares...)
}

// Layout adds a layout. Layouts added first wrap outermost.
func (r *Router) Layout(l Layout) {
	if l != nil {
		r.layouts = append(r.layouts, l)
	}
}

// Route registers page for GET requests matching pattern. Patterns use chi
// syntax: "/users/{id}", "/files/*". Registering the same pattern twice
// fails with E201.
func (r *Router) Route(pattern string, page Page) (err error) {
	if err := ValidatePattern(pattern); err != nil {
		return err
	}
	if page == nil {
		return errors.New("E201").
			WithDetail("Route " + pattern + " has no page.")
	}
	if r.patterns[pattern] {
		return errors.New("E201").
			WithDetail("Route " + r.prefix + pattern + " is already registered.").
			WithSuggestion("Use Switch to let the first of several routes win.")
	}
	defer recoverPattern(pattern, &err)

	r.mux.Get(pattern, func(w http.ResponseWriter, req *http.Request) {
		r.shared.serve(w, req, r, page, http.StatusOK)
	})
	r.patterns[pattern] = true
	r.shared.logger.Debug("route registered", "pattern", r.prefix+pattern)
	return nil
}

// Switch registers routes so that exactly one page renders per request.
// When several routes share a pattern the first one wins and the rest are
// skipped. Among distinct patterns chi picks the most specific match.
func (r *Router) Switch(routes ...Route) error {
	for _, route := range routes {
		if r.patterns[route.Pattern] {
			r.shared.logger.Debug("route shadowed", "pattern", r.prefix+route.Pattern)
			continue
		}
		if err := r.Route(route.Pattern, route.Page); err != nil {
			return err
		}
	}
	return nil
}

// Nest mounts a sub-router under pattern. Pages registered on the
// sub-router are wrapped in this router's layouts as well as its own.
func (r *Router) Nest(pattern string, fn func(sub *Router)) (err error) {
	if err := ValidatePattern(pattern); err != nil {
		return err
	}
	if strings.Contains(pattern, "*") {
		return errors.New("E201").
			WithDetail("Nested route " + pattern + " cannot contain a wildcard.")
	}
	sub := &Router{
		mux:      chi.NewRouter(),
		parent:   r,
		prefix:   r.prefix + strings.TrimSuffix(pattern, "/"),
		patterns: make(map[string]bool),
		shared:   r.shared,
	}
	sub.mux.NotFound(r.shared.handleNotFound)
	fn(sub)

	defer recoverPattern(pattern, &err)
	r.mux.Mount(pattern, sub.mux)
	return nil
}

// Redirect registers pattern to redirect to another route. to is relative
// to the base path. The status defaults to 302 Found.
func (r *Router) Redirect(pattern, to string, code ...int) (err error) {
	if err := ValidatePattern(pattern); err != nil {
		return err
	}
	status := http.StatusFound
	if len(code) > 0 {
		status = code[0]
	}
	defer recoverPattern(pattern, &err)

	target := joinPath(r.shared.base, to)
	r.mux.Get(pattern, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, target, status)
	})
	r.patterns[pattern] = true
	return nil
}

// Handle mounts a plain http.Handler, e.g. an asset server.
func (r *Router) Handle(pattern string, h http.Handler) (err error) {
	if err := ValidatePattern(pattern); err != nil {
		return err
	}
	defer recoverPattern(pattern, &err)
	r.mux.Handle(pattern, h)
	return nil
}

// NotFound sets the page rendered with status 404 for unmatched paths.
func (r *Router) NotFound(page Page) {
	r.shared.notFound = page
}

// Patterns returns every GET pattern served, with the base path and nest
// prefixes included.
func (r *Router) Patterns() []string {
	var out []string
	_ = chi.Walk(r.shared.root, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method == http.MethodGet {
			out = append(out, route)
		}
		return nil
	})
	return out
}

func (s *shared) handleNotFound(w http.ResponseWriter, req *http.Request) {
	if s.notFound == nil {
		http.NotFound(w, req)
		return
	}
	s.serve(w, req, nil, s.notFound, http.StatusNotFound)
}

// serve renders page into a fresh document and writes it. The document is
// rendered into a buffer first so a failure can still produce a 500.
func (s *shared) serve(w http.ResponseWriter, req *http.Request, r *Router, page Page, status int) {
	ctx := newContext(w, req, s.base, status)

	node, err := s.renderPage(ctx, r, page)
	if err != nil {
		s.fail(w, req, err)
		return
	}
	if ctx.redirect != "" {
		http.Redirect(w, req, ctx.redirect, ctx.redirectCode)
		return
	}

	doc := render.NewDocument(s.doc)
	if ctx.title != "" {
		doc.SetTitle(ctx.title)
	}
	if err := s.app.RenderRoot(doc, node); err != nil {
		s.fail(w, req, err)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderDocument(&buf, doc); err != nil {
		s.fail(w, req, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(ctx.status)
	_, _ = buf.WriteTo(w)

	s.logger.Debug("page rendered",
		"path", req.URL.Path,
		"pattern", routePattern(req),
		"status", ctx.status)
}

func (s *shared) renderPage(ctx *Context, r *Router, page Page) (node *vdom.VNode, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page panicked: %v", rec)
		}
	}()

	node = page(ctx)
	for ; r != nil; r = r.parent {
		for i := len(r.layouts) - 1; i >= 0; i-- {
			node = r.layouts[i](ctx, node)
		}
	}
	return node, nil
}

func (s *shared) fail(w http.ResponseWriter, req *http.Request, err error) {
	s.logger.Error("page render failed",
		"path", req.URL.Path,
		"pattern", routePattern(req),
		"error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// routePattern returns the chi pattern the request matched, "" if none.
func routePattern(req *http.Request) string {
	if rctx := chi.RouteContext(req.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// recoverPattern turns a chi registration panic into E201.
func recoverPattern(pattern string, err *error) {
	if rec := recover(); rec != nil {
		*err = errors.New("E201").
			WithDetail(fmt.Sprintf("Pattern %q was rejected: %v", pattern, rec))
	}
}

func cleanBase(base string) string {
	base = strings.TrimRight(base, "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}

func joinPath(base, p string) string {
	if base == "" || !strings.HasPrefix(p, "/") {
		return p
	}
	return base + p
}
