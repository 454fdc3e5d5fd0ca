package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wacrm/wacrm/internal/platform/timeouts"
	"github.com/wacrm/wacrm/internal/services/web/composition"
	"github.com/wacrm/wacrm/internal/services/web/modules"
	"github.com/wacrm/wacrm/internal/services/web/platform/httpx"
	"github.com/wacrm/wacrm/internal/services/web/platform/observability"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"github.com/wacrm/wacrm/internal/services/web/platform/weberror"
	"github.com/wacrm/wacrm/internal/services/web/principal"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
	"github.com/wacrm/wacrm/internal/services/web/static"
	"go.uber.org/zap"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// SessionGateway answers session lookups. Nil treats every visitor as
	// anonymous.
	SessionGateway principal.SessionGateway
	// SessionTimeout bounds one session lookup; zero uses the default.
	SessionTimeout      time.Duration
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *zap.Logger
	// Registry receives the web collectors and backs /metrics. Nil creates
	// a private registry with Go and process collectors.
	Registry *prometheus.Registry
	// Closers are released by Server.Close, in order.
	Closers []io.Closer
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
	closers    []io.Closer
}

// NewHandler builds the root handler: composed modules, static assets and
// metrics, wrapped in the request middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := config.Registry
	if registry == nil {
		registry = newRegistry()
	}
	metrics := observability.NewMetrics(registry)

	resolverOpts := []principal.Option{principal.WithLogger(logger.Named("principal"))}
	if config.SessionTimeout > 0 {
		resolverOpts = append(resolverOpts, principal.WithTimeout(config.SessionTimeout))
	}
	resolver := principal.NewResolver(config.SessionGateway, resolverOpts...)

	app, err := composition.ComposeAppHandler(composition.ComposeInput{
		Dependencies: modules.Dependencies{
			ResolveState:        resolver.Resolve,
			Outcomes:            metrics,
			RequestSchemePolicy: config.RequestSchemePolicy,
			Logger:              logger.Named("landing"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	root := http.NewServeMux()
	root.Handle(routepath.Static, staticHandler())
	root.Handle(http.MethodGet+" "+routepath.Metrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	root.Handle(routepath.Root, app)

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(logger, panicPage(config.RequestSchemePolicy, logger)),
		observability.Tracing(config.RequestSchemePolicy),
		metrics.Middleware(),
		resolver.Middleware(),
		observability.AccessLog(logger.Named("http")),
	), nil
}

func newRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func staticHandler() http.Handler {
	files := http.StripPrefix(strings.TrimSuffix(routepath.Static, "/"), http.FileServerFS(static.FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// panicPage renders the localized server error page after a recovered panic.
func panicPage(policy requestmeta.SchemePolicy, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := weberror.WritePage(w, r, http.StatusInternalServerError, policy); err != nil {
			logger.Error("render panic page", zap.Error(err))
		}
	})
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	config.Logger = logger
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		logger:     logger,
		closers:    config.Closers,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("web shutting down", zap.Duration("timeout", timeouts.Shutdown))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the resources handed to the server, such as the session
// store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	for _, closer := range s.closers {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			s.logger.Warn("close web resource", zap.Error(err))
		}
	}
}
