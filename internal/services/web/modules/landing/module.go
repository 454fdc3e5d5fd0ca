// Package landing serves the public marketing page and sends signed-in
// visitors on to the dashboard.
package landing

import (
	"net/http"
	"strings"

	module "github.com/wacrm/wacrm/internal/services/web/module"
	"github.com/wacrm/wacrm/internal/services/web/platform/httpx"
	"github.com/wacrm/wacrm/internal/services/web/platform/publichandler"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Navigator sends the client to location.
type Navigator func(w http.ResponseWriter, r *http.Request, location string)

// OutcomeRecorder counts how landing requests were answered.
type OutcomeRecorder interface {
	RecordLandingOutcome(outcome string)
}

// Landing outcomes reported to the OutcomeRecorder.
const (
	OutcomeRendered   = "rendered"
	OutcomeRedirected = "redirected"
	OutcomeLoading    = "loading"
)

// Module provides the root landing routes.
type Module struct {
	id           string
	prefix       string
	resolveState module.ResolveState
	navigate     Navigator
	outcomes     OutcomeRecorder
	policy       requestmeta.SchemePolicy
	logger       *zap.Logger
}

// Option configures a Module.
type Option func(*Module)

// WithStateResolver sets how the visitor's auth state is read.
func WithStateResolver(resolve module.ResolveState) Option {
	return func(m *Module) { m.resolveState = resolve }
}

// WithNavigator replaces the dashboard redirect writer.
func WithNavigator(navigate Navigator) Option {
	return func(m *Module) {
		if navigate != nil {
			m.navigate = navigate
		}
	}
}

// WithOutcomeRecorder sets the recorder for landing outcomes.
func WithOutcomeRecorder(recorder OutcomeRecorder) Option {
	return func(m *Module) { m.outcomes = recorder }
}

// WithSchemePolicy sets how HTTPS is detected for cookies.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.policy = policy }
}

// WithLogger sets the module logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Module) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New returns the landing module.
func New(opts ...Option) Module {
	m := Module{
		id:       "landing",
		prefix:   routepath.Root,
		navigate: httpx.WriteRedirect,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "landing"
	}
	return id
}

// Mount wires the landing routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	base := publichandler.NewBase(
		publichandler.WithResolveState(m.resolveState),
		publichandler.WithSchemePolicy(m.policy),
		publichandler.WithLogger(m.logger),
	)
	registerRoutes(mux, newHandlers(base, newService(), m.navigate, m.outcomes))
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}
