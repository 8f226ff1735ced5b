// Package middleware provides chi middleware for bloxi page servers.
//
// This package includes:
//   - OpenTelemetry tracing of page requests
//   - Prometheus render metrics
//   - Request logging and panic recovery with log/slog
//   - Canonical path redirects
//
// All middleware has the chi signature func(http.Handler) http.Handler and
// is added with router.Router.Use before any route is registered.
//
// # OpenTelemetry Middleware
//
// Every request gets a server span named after the matched route pattern:
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-site"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Pages reach the span through their request context with SpanFromContext.
//
// # Prometheus Metrics
//
// The Prometheus middleware records:
//   - bloxi_renders_total: Requests by route pattern and status code
//   - bloxi_render_duration_seconds: Request duration histogram
//   - bloxi_render_errors_total: 5xx responses by route
//   - bloxi_renders_in_flight: Requests being served
//   - bloxi_stylesheet_publishes_total: Stylesheet publishes by target
//
//	r.Use(middleware.Prometheus())
//	mux.Handle("/metrics", promhttp.Handler())
//
// Route labels are chi patterns ("/users/{id}"), never raw paths.
package middleware
