// Package middleware provides net/http middleware for the pagination server.
//
// This package includes:
//   - Prometheus metrics middleware
//   - OpenTelemetry tracing middleware
//   - Structured request logging
//
// # Prometheus Metrics
//
// NewMetrics registers the collectors once; Handler wraps a router:
//
//	m := middleware.NewMetrics(
//	    middleware.WithNamespace("pager"),
//	    middleware.WithRegistry(reg),
//	)
//	r.Use(m.Handler)
//
// Handlers record domain events on the same value:
//
//	m.RecordRender("html", len(items))
//	m.RecordBadRequest("per_page")
//
// # OpenTelemetry Tracing
//
// Tracing starts a server span per request using the global tracer provider
// unless WithTracerProvider is given:
//
//	r.Use(middleware.Tracing(
//	    middleware.WithTracerName("pager"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Handlers reach the span through trace.SpanFromContext(r.Context()).
//
// # Logging
//
// RequestLogger writes one slog record per request with method, path,
// status, size, duration and the chi request id.
package middleware
