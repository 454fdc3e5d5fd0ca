// Package web wires configuration for the web service command.
package web

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	platformcmd "github.com/wacrm/wacrm/internal/platform/cmd"
	"github.com/wacrm/wacrm/internal/platform/logging"
	"github.com/wacrm/wacrm/internal/services/web"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"github.com/wacrm/wacrm/internal/services/web/principal"
	"github.com/wacrm/wacrm/internal/services/web/principal/jwtsession"
	"github.com/wacrm/wacrm/internal/services/web/storage/sqlite"
	"go.uber.org/zap"
)

// Session backends selectable with WACRM_WEB_SESSION_BACKEND.
const (
	SessionBackendNone   = "none"
	SessionBackendJWT    = "jwt"
	SessionBackendSQLite = "sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr             string        `env:"WACRM_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	SessionBackend       string        `env:"WACRM_WEB_SESSION_BACKEND" envDefault:"none"`
	SessionSecret        string        `env:"WACRM_WEB_SESSION_SECRET"`
	SessionIssuer        string        `env:"WACRM_WEB_SESSION_ISSUER"`
	SessionLeeway        time.Duration `env:"WACRM_WEB_SESSION_LEEWAY" envDefault:"30s"`
	SessionDBPath        string        `env:"WACRM_WEB_SESSION_DB_PATH" envDefault:"data/web-sessions.db"`
	SessionTimeout       time.Duration `env:"WACRM_WEB_SESSION_TIMEOUT" envDefault:"750ms"`
	SessionPruneInterval time.Duration `env:"WACRM_WEB_SESSION_PRUNE_INTERVAL" envDefault:"1h"`
	TrustForwardedProto  bool          `env:"WACRM_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel             string        `env:"WACRM_LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"WACRM_LOG_FORMAT" envDefault:"console"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session backend: none, jwt, or sqlite")
	fs.StringVar(&cfg.SessionDBPath, "session-db-path", cfg.SessionDBPath, "SQLite session database path")
	fs.DurationVar(&cfg.SessionTimeout, "session-timeout", cfg.SessionTimeout, "Per-request session lookup deadline")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for secure cookies")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: platformcmd.ServiceWeb,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceWeb, platformcmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		backend, err := openSessionBackend(ctx, cfg)
		if err != nil {
			return fmt.Errorf("open session backend: %w", err)
		}
		logger.Info("session backend ready", zap.String("backend", backend.name))
		if backend.store != nil && cfg.SessionPruneInterval > 0 {
			go pruneExpiredSessions(ctx, backend.store, cfg.SessionPruneInterval, time.Now, logger.Named("sessions"))
		}

		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			SessionGateway:      backend.gateway,
			SessionTimeout:      cfg.SessionTimeout,
			RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			Logger:              logger,
			Closers:             backend.closers(),
		})
		if err != nil {
			for _, closer := range backend.closers() {
				_ = closer.Close()
			}
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

type sessionBackend struct {
	name    string
	gateway principal.SessionGateway
	store   *sqlite.Store
}

func (b sessionBackend) closers() []io.Closer {
	if b.store == nil {
		return nil
	}
	return []io.Closer{b.store}
}

func openSessionBackend(ctx context.Context, cfg Config) (sessionBackend, error) {
	switch cfg.SessionBackend {
	case "", SessionBackendNone:
		return sessionBackend{name: SessionBackendNone}, nil
	case SessionBackendJWT:
		gateway, err := jwtsession.New(jwtsession.Config{
			Secret: []byte(cfg.SessionSecret),
			Issuer: cfg.SessionIssuer,
			Leeway: cfg.SessionLeeway,
		})
		if err != nil {
			return sessionBackend{}, err
		}
		return sessionBackend{name: SessionBackendJWT, gateway: gateway}, nil
	case SessionBackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SessionDBPath)
		if err != nil {
			return sessionBackend{}, err
		}
		return sessionBackend{name: SessionBackendSQLite, gateway: store, store: store}, nil
	default:
		return sessionBackend{}, fmt.Errorf("unsupported session backend %q", cfg.SessionBackend)
	}
}

type sessionPruner interface {
	PruneExpiredWebSessions(ctx context.Context, now time.Time) (int64, error)
}

// pruneExpiredSessions deletes expired sessions now and then every interval
// until ctx ends.
func pruneExpiredSessions(ctx context.Context, store sessionPruner, interval time.Duration, now func() time.Time, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		removed, err := store.PruneExpiredWebSessions(ctx, now())
		switch {
		case err != nil && ctx.Err() == nil:
			logger.Warn("prune expired sessions", zap.Error(err))
		case removed > 0:
			logger.Info("pruned expired sessions", zap.Int64("removed", removed))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
