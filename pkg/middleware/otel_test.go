package middleware

import (
	"context"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordingProvider hands out a tracer that remembers every span it starts.
type recordingProvider struct {
	noop.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return p.tracer
}

type recordingTracer struct {
	noop.Tracer
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordingSpan{name: name, kind: cfg.SpanKind(), attrs: map[attribute.Key]attribute.Value{}}
	for _, kv := range cfg.Attributes() {
		s.attrs[kv.Key] = kv.Value
	}
	t.spans = append(t.spans, s)
	return trace.ContextWithSpan(ctx, s), s
}

type recordingSpan struct {
	noop.Span
	name   string
	kind   trace.SpanKind
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetName(name string) { s.name = name }
func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }
func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{tracer: &recordingTracer{}}
}

func TestOpenTelemetrySpans(t *testing.T) {
	tp := newRecordingProvider()
	mux := newTestMux(OpenTelemetry(
		WithTracerProvider(tp),
		WithTracerName("test"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))

	serve(mux, "/users/5")
	serve(mux, "/fail")

	if len(tp.tracer.spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(tp.tracer.spans))
	}

	ok := tp.tracer.spans[0]
	if ok.name != "GET /users/{id}" {
		t.Errorf("name = %q", ok.name)
	}
	if ok.kind != trace.SpanKindServer {
		t.Errorf("kind = %v", ok.kind)
	}
	if !ok.ended {
		t.Error("span not ended")
	}
	if ok.status != codes.Ok {
		t.Errorf("status = %v", ok.status)
	}
	want := map[attribute.Key]string{
		"http.method": "GET",
		"http.target": "/users/5",
		"bloxi.route": "/users/{id}",
		"test.attr":   "ok",
	}
	for k, v := range want {
		if got := ok.attrs[k].AsString(); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if code := ok.attrs["http.status_code"].AsInt64(); code != 200 {
		t.Errorf("http.status_code = %d", code)
	}

	failed := tp.tracer.spans[1]
	if failed.status != codes.Error {
		t.Errorf("5xx status = %v, want Error", failed.status)
	}
}

func TestOpenTelemetrySpanInContext(t *testing.T) {
	tp := newRecordingProvider()
	var seen trace.Span

	h := OpenTelemetry(WithTracerProvider(tp))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SpanFromContext(r.Context())
	}))
	serve(h, "/x")

	if len(tp.tracer.spans) != 1 || seen != trace.Span(tp.tracer.spans[0]) {
		t.Error("handler should see the request span in its context")
	}
}

func TestOpenTelemetryFilter(t *testing.T) {
	tp := newRecordingProvider()
	nextCalled := false

	h := OpenTelemetry(
		WithTracerProvider(tp),
		WithFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		nextCalled = true
	}))

	serve(h, "/healthz")
	if !nextCalled {
		t.Error("filtered request should still be served")
	}
	if len(tp.tracer.spans) != 0 {
		t.Errorf("filtered request traced: %d spans", len(tp.tracer.spans))
	}
}
