package landing

import (
	"net/http"

	webi18n "github.com/wacrm/wacrm/internal/services/web/platform/i18n"
	"github.com/wacrm/wacrm/internal/services/web/platform/publichandler"
	"github.com/wacrm/wacrm/internal/services/web/platform/sessioncookie"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
	webtemplates "github.com/wacrm/wacrm/internal/services/web/templates"
	"go.uber.org/zap"
)

type handlers struct {
	publichandler.Base
	service  service
	navigate Navigator
	outcomes OutcomeRecorder
}

func newHandlers(base publichandler.Base, s service, navigate Navigator, outcomes OutcomeRecorder) handlers {
	return handlers{Base: base, service: s, navigate: navigate, outcomes: outcomes}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	state := h.AuthState(r)
	// The page depends on the session and language cookies and on the
	// negotiated language.
	w.Header().Add("Vary", "Cookie")
	w.Header().Add("Vary", "Accept-Language")
	w.Header().Set("Cache-Control", "private, no-cache")
	if state.SignedIn() {
		h.Logger().Debug("redirect signed-in visitor",
			zap.String("user_id", state.User.ID),
			zap.String("location", routepath.Dashboard),
		)
		h.navigate(w, r, routepath.Dashboard)
		h.record(OutcomeRedirected)
		return
	}
	if state.Rejected {
		sessioncookie.ClearWithPolicy(w, r, h.SchemePolicy())
	}

	_, tag := webi18n.ResolveLocalizer(w, r, h.SchemePolicy())
	text, view := h.service.landingView(tag, r.URL.Path, r.URL.RawQuery)
	page := webtemplates.PageContext{
		Lang:            text.Lang,
		Title:           text.MetaTitle,
		MetaDescription: text.MetaDescription,
		AuthState:       webtemplates.AuthStateAnonymous,
	}
	outcome := OutcomeRendered
	if state.Loading {
		page.AuthState = webtemplates.AuthStateLoading
		outcome = OutcomeLoading
	}
	h.WritePublicPage(w, r, page, http.StatusOK, webtemplates.LandingPage(view))
	h.record(outcome)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

func (h handlers) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodHead)
}

func (h handlers) record(outcome string) {
	if h.outcomes == nil {
		return
	}
	h.outcomes.RecordLandingOutcome(outcome)
}
