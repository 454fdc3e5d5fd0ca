package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLogLogsMethodPathAndStatus(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/" || fields["request_id"] != "req-123" {
		t.Fatalf("fields = %v", fields)
	}
	if fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("status field = %v, want %d", fields["status"], http.StatusNoContent)
	}
}

func TestAccessLogCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/up", nil))
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("status field = %v, want 200", fields["status"])
	}
	if fields["bytes"] != int64(2) {
		t.Fatalf("bytes field = %v, want 2", fields["bytes"])
	}
	if _, ok := fields["latency"]; !ok {
		t.Fatalf("expected latency field in %v", fields)
	}
}

func TestMetricsMiddlewareCountsByRouteAndCode(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	h := metrics.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/", "/", "/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues("root", "200")); got != 2 {
		t.Fatalf("root 200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues("other", "404")); got != 1 {
		t.Fatalf("other 404 count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(metrics.duration); got != 2 {
		t.Fatalf("duration series = %d, want 2", got)
	}
}

func TestRecordLandingOutcome(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	metrics.RecordLandingOutcome("redirected")
	metrics.RecordLandingOutcome("rendered")
	metrics.RecordLandingOutcome("rendered")
	metrics.RecordLandingOutcome("")

	expected := `
# HELP wacrm_web_landing_outcomes_total Landing page responses by outcome: rendered, redirected, or loading.
# TYPE wacrm_web_landing_outcomes_total counter
wacrm_web_landing_outcomes_total{outcome="redirected"} 1
wacrm_web_landing_outcomes_total{outcome="rendered"} 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "wacrm_web_landing_outcomes_total"); err != nil {
		t.Fatalf("landing outcomes: %v", err)
	}

	var nilMetrics *Metrics
	nilMetrics.RecordLandingOutcome("rendered")
}

func TestTracingRecordsServerSpan(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	var inner trace.SpanContext
	h := TracingWith(provider, propagation.TraceContext{}, requestmeta.SchemePolicy{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanContextFromContext(r.Context())
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "GET root" {
		t.Fatalf("span name = %q, want %q", span.Name(), "GET root")
	}
	if got := span.SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("trace id = %q, want propagated trace", got)
	}
	if !inner.IsValid() || inner.SpanID() != span.SpanContext().SpanID() {
		t.Fatalf("handler context span = %v, want server span", inner.SpanID())
	}
	if span.Status().Code != codes.Error {
		t.Fatalf("span status = %v, want error for 503", span.Status().Code)
	}
	var foundStatus bool
	for _, kv := range span.Attributes() {
		if kv.Key == attribute.Key("http.response.status_code") && kv.Value.AsInt64() == http.StatusServiceUnavailable {
			foundStatus = true
		}
	}
	if !foundStatus {
		t.Fatalf("missing status attribute in %v", span.Attributes())
	}
}
