package composition

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/wacrm/wacrm/internal/services/web/module"
	"github.com/wacrm/wacrm/internal/services/web/modules"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"github.com/wacrm/wacrm/internal/services/web/principal"
)

func TestComposeAppHandlerPassesDependenciesToRegistry(t *testing.T) {
	t.Parallel()

	var got modules.Dependencies
	reg := RegistryFunc(func(deps modules.Dependencies) []modules.Module {
		got = deps
		return []modules.Module{
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		}
	})

	h, err := ComposeAppHandler(ComposeInput{
		Dependencies: modules.Dependencies{RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: true}},
		Registry:     reg,
	})
	if err != nil {
		t.Fatalf("ComposeAppHandler() error = %v", err)
	}
	if !got.RequestSchemePolicy.TrustForwardedProto {
		t.Fatalf("registry did not receive scheme policy")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeAppHandlerDefaultsToDefaultModules(t *testing.T) {
	t.Parallel()

	h, err := ComposeAppHandler(ComposeInput{
		Dependencies: modules.Dependencies{
			ResolveState: func(*http.Request) principal.State { return principal.SignedInAs(principal.User{ID: "user-1"}) },
		},
	})
	if err != nil {
		t.Fatalf("ComposeAppHandler() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/dashboard" {
		t.Fatalf("status = %d location = %q, want redirect to /dashboard", rr.Code, rr.Header().Get("Location"))
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health status = %d body = %q", rr.Code, rr.Body.String())
	}
}

func TestComposeAppHandlerPropagatesCompositionErrors(t *testing.T) {
	t.Parallel()

	reg := RegistryFunc(func(modules.Dependencies) []modules.Module {
		return []modules.Module{nil}
	})
	if _, err := ComposeAppHandler(ComposeInput{Registry: reg}); err == nil {
		t.Fatalf("expected composition error")
	}
}

type stubModule struct {
	id    string
	mount module.Mount
}

func (s stubModule) ID() string { return s.id }

func (s stubModule) Mount() (module.Mount, error) { return s.mount, nil }
