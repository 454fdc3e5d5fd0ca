package principal

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/wacrm/wacrm/internal/platform/timeouts"
	apperrors "github.com/wacrm/wacrm/internal/services/web/platform/errors"
	"github.com/wacrm/wacrm/internal/services/web/platform/sessioncookie"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultTimeout bounds how long one request waits for the session source.
const DefaultTimeout = timeouts.SessionLookup

const tracerName = "github.com/wacrm/wacrm/internal/services/web/principal"

// Resolver turns the session cookie of a request into a State.
type Resolver struct {
	gateway SessionGateway
	timeout time.Duration
	logger  *zap.Logger
	tracer  trace.Tracer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTimeout sets the per-request lookup deadline. Non-positive values keep
// the default.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithLogger sets the logger for lookup failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver builds a resolver. A nil gateway settles every request as
// anonymous.
func NewResolver(gateway SessionGateway, opts ...Option) *Resolver {
	r := &Resolver{
		gateway: gateway,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

type requestState struct {
	once  sync.Once
	state State
}

type requestStateKey struct{}

// Middleware attaches a per-request memo so Resolve asks the gateway at most
// once per request.
func (r *Resolver) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), requestStateKey{}, &requestState{})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// Resolve returns the auth state of req.
func (r *Resolver) Resolve(req *http.Request) State {
	if req == nil {
		return Anonymous()
	}
	if memo, ok := req.Context().Value(requestStateKey{}).(*requestState); ok && memo != nil {
		memo.once.Do(func() {
			memo.state = r.resolveUncached(req)
		})
		return memo.state
	}
	return r.resolveUncached(req)
}

func (r *Resolver) resolveUncached(req *http.Request) State {
	if r == nil || r.gateway == nil {
		return Anonymous()
	}
	sessionID, ok := sessioncookie.Read(req)
	if !ok {
		return Anonymous()
	}

	ctx, span := r.tracer.Start(req.Context(), "principal.resolve")
	defer span.End()
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	user, err := r.lookup(ctx, sessionID)
	state := r.classify(req, user, err)
	span.SetAttributes(attribute.String("auth.state", stateLabel(state)))
	return state
}

type lookupResult struct {
	user User
	err  error
}

// lookup asks the gateway for sessionID and gives up when ctx ends, even if
// the gateway ignores ctx. An abandoned lookup finishes in the background.
func (r *Resolver) lookup(ctx context.Context, sessionID string) (User, error) {
	done := make(chan lookupResult, 1)
	go func() {
		user, err := r.gateway.LookupSession(ctx, sessionID)
		done <- lookupResult{user: user, err: err}
	}()
	select {
	case result := <-done:
		return result.user, result.err
	case <-ctx.Done():
		return User{}, ctx.Err()
	}
}

func (r *Resolver) classify(req *http.Request, user User, err error) State {
	if err == nil {
		if strings.TrimSpace(user.ID) == "" {
			return State{Rejected: true}
		}
		return SignedInAs(user)
	}
	if IsRejected(err) {
		return State{Rejected: true}
	}
	if apperrors.KindOf(err) == apperrors.KindUnavailable {
		r.logger.Warn("session lookup unsettled",
			zap.String("path", req.URL.Path),
			zap.Duration("timeout", r.timeout),
			zap.Error(err),
		)
		return Pending()
	}
	r.logger.Error("session lookup failed", zap.String("path", req.URL.Path), zap.Error(err))
	return Anonymous()
}

func stateLabel(state State) string {
	switch {
	case state.Loading:
		return "loading"
	case state.SignedIn():
		return "signed_in"
	case state.Rejected:
		return "rejected"
	default:
		return "anonymous"
	}
}
