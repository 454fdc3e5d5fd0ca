package observability

import (
	"net/http"

	"github.com/wacrm/wacrm/internal/services/web/platform/httpx"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/wacrm/wacrm/internal/services/web"

// Tracing starts one server span per request, continuing any trace context
// propagated by the caller.
func Tracing(policy requestmeta.SchemePolicy) httpx.Middleware {
	return TracingWith(otel.GetTracerProvider(), otel.GetTextMapPropagator(), policy)
}

// TracingWith is Tracing with an explicit provider and propagator.
func TracingWith(provider trace.TracerProvider, propagator propagation.TextMapPropagator, policy requestmeta.SchemePolicy) httpx.Middleware {
	tracer := provider.Tracer(tracerName)
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			route := routepath.Label(r.URL.Path)
			ctx, span := tracer.Start(ctx, r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("http.route", route),
					attribute.String("url.path", r.URL.Path),
					attribute.String("url.scheme", requestmeta.Scheme(r, policy)),
					attribute.String("http.request_id", httpx.RequestIDFrom(r)),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))
			status := rec.statusCode()
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}
