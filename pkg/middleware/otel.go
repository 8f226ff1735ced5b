package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for bloxi servers.
const defaultTracerName = "bloxi"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "bloxi").
	TracerName string

	// TracerProvider overrides the global provider.
	TracerProvider trace.TracerProvider

	// Filter determines which requests to trace.
	// Return true to trace the request, false to skip.
	// If nil, all requests are traced.
	Filter func(r *http.Request) bool

	// AttributeExtractor extracts custom attributes from the request.
	AttributeExtractor func(r *http.Request) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithFilter sets a filter function for requests.
func WithFilter(filter func(r *http.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(r *http.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry returns chi middleware that traces every page request.
//
// The middleware:
//   - Starts a server span per request and puts it in the request context
//   - Renames the span to the matched route pattern once routing is done
//   - Records the status code and marks 5xx responses as errors
//
// The tracer uses the global OpenTelemetry tracer provider unless
// WithTracerProvider is given. Configure it in main() before serving:
//
//	otel.SetTracerProvider(tp)
//	r.Use(middleware.OpenTelemetry())
func OpenTelemetry(opts ...OTelOption) func(http.Handler) http.Handler {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	provider := config.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(config.TracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(r)...)
			}

			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routeLabel(r)
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				attribute.String("bloxi.route", route),
				attribute.Int("http.status_code", status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

// SpanFromContext retrieves the current trace span from a request context.
//
// Example:
//
//	func page(ctx *router.Context) *vdom.VNode {
//	    middleware.SpanFromContext(ctx.Request.Context()).
//	        SetAttributes(attribute.Int("items", len(items)))
//	    ...
//	}
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
