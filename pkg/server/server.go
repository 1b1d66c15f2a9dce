package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/pager/internal/config"
	"github.com/vango-dev/pager/internal/errors"
	"github.com/vango-dev/pager/pkg/middleware"
	"github.com/vango-dev/pager/pkg/paginate"
)

const readHeaderTimeout = 5 * time.Second

// Server serves pagination controls built from a base configuration.
type Server struct {
	config   *config.Config
	router   chi.Router
	metrics  *middleware.Metrics
	registry *prometheus.Registry
	tracer   trace.TracerProvider
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry the server registers its
// collectors with and exposes on the metrics path. Default: a new registry
// with the Go and process collectors.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithTracerProvider enables tracing with tp regardless of the config's
// tracing flag.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracer = tp
	}
}

// New creates a Server for cfg. A nil cfg uses config.New().
func New(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Server{config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "server")
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	s.metrics = middleware.NewMetrics(middleware.WithRegistry(s.registry))
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	if s.tracer != nil || s.config.Server.Tracing {
		opts := []middleware.OTelOption{
			middleware.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz"
			}),
		}
		if s.tracer != nil {
			opts = append(opts, middleware.WithTracerProvider(s.tracer))
		}
		r.Use(middleware.Tracing(opts...))
	}

	r.Get("/pagination", s.handleHTML)
	r.Get("/pagination.json", s.handleJSON)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if path := s.config.Server.MetricsPath; path != "" && path != "-" {
		r.Method(http.MethodGet, path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response is the body of /pagination.json.
type Response struct {
	NumPages int             `json:"numPages"`
	Window   paginate.Window `json:"window"`
	Items    []paginate.Item `json:"items"`
	HTML     string          `json:"html"`
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	cfg, ok := s.pagination(w, r)
	if !ok {
		return
	}
	items := cfg.Items()
	body := paginate.RenderItems(items)
	s.metrics.RecordRender("html", len(items))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(body))
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	cfg, ok := s.pagination(w, r)
	if !ok {
		return
	}
	items := cfg.Items()
	resp := Response{
		NumPages: cfg.NumPages(),
		Window:   cfg.Interval(),
		Items:    items,
		HTML:     paginate.RenderItems(items),
	}
	s.metrics.RecordRender("json", len(items))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// pagination builds the request's config, answering 400 itself on failure.
func (s *Server) pagination(w http.ResponseWriter, r *http.Request) (paginate.Config, bool) {
	cfg, err := parseQuery(r.URL.Query(), s.config.Pagination)
	if err != nil {
		pe := errors.FromError(err, "E160")
		s.metrics.RecordBadRequest(pe.Field)
		s.logger.Debug("bad query", "field", pe.Field, "error", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(pe.FormatJSON()))
		return cfg, false
	}

	window := cfg.Interval()
	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.Int("pager.num_pages", cfg.NumPages()),
		attribute.Int("pager.current_page", cfg.CurrentPage),
		attribute.Int("pager.items_per_page", cfg.ItemsPerPage),
		attribute.Int("pager.window_start", window.Start),
		attribute.Int("pager.window_end", window.End),
	)
	return cfg, true
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeoutDuration())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	}
}
