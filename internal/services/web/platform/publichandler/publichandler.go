// Package publichandler provides a shared base for public web module handlers.
// It centralizes auth state lookup, error handling, and page rendering that
// would otherwise be duplicated across public modules.
package publichandler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/wacrm/wacrm/internal/services/web/module"
	apperrors "github.com/wacrm/wacrm/internal/services/web/platform/errors"
	"github.com/wacrm/wacrm/internal/services/web/platform/httpx"
	"github.com/wacrm/wacrm/internal/services/web/platform/pagerender"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"github.com/wacrm/wacrm/internal/services/web/platform/weberror"
	"github.com/wacrm/wacrm/internal/services/web/principal"
	webtemplates "github.com/wacrm/wacrm/internal/services/web/templates"
	"go.uber.org/zap"
)

const (
	notFoundKey         = "core.error.not_found.message"
	methodNotAllowedKey = "core.error.method_not_allowed"
)

// Base provides shared error handling and page rendering for public modules.
// Embed this in handler structs to get WritePublicPage, WriteNotFound,
// WriteMethodNotAllowed, and WriteError.
type Base struct {
	resolveState module.ResolveState
	policy       requestmeta.SchemePolicy
	logger       *zap.Logger
}

// Option configures a Base.
type Option func(*Base)

// WithResolveState attaches the auth state resolver.
func WithResolveState(resolve module.ResolveState) Option {
	return func(b *Base) { b.resolveState = resolve }
}

// WithSchemePolicy sets how request schemes are detected for cookies.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.policy = policy }
}

// WithLogger sets the logger used for render failures.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	b := Base{logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// AuthState resolves the visitor's auth state. Without a resolver every
// visitor is settled anonymous.
func (b Base) AuthState(r *http.Request) principal.State {
	if b.resolveState == nil {
		return principal.Anonymous()
	}
	return b.resolveState(r)
}

// SchemePolicy returns the scheme policy used for cookies.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// Logger returns the handler logger.
func (b Base) Logger() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

// WritePublicPage renders a full public page, logging render failures.
func (b Base) WritePublicPage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int, body templ.Component) {
	if err := pagerender.WritePublicPage(w, r, page, statusCode, body); err != nil {
		b.logRenderFailure(r, err)
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, notFoundKey, "route not found"))
}

// WriteMethodNotAllowed answers 405 with an Allow header and a localized message.
func (b Base) WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request, allow ...string) {
	if w == nil {
		return
	}
	w.Header().Set("Allow", strings.Join(allow, ", "))
	b.WriteError(w, r, apperrors.EK(apperrors.KindMethodNotAllowed, methodNotAllowedKey, "method not allowed"))
}

// WriteError renders a user-safe error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if renderErr := weberror.WriteError(w, r, err, b.policy); renderErr != nil {
		b.logRenderFailure(r, renderErr)
	}
}

func (b Base) logRenderFailure(r *http.Request, err error) {
	path := "-"
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	b.Logger().Error("render page",
		zap.String("path", path),
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err),
	)
}
