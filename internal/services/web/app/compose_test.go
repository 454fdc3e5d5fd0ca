package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/wacrm/wacrm/internal/services/web/module"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "up"},
		{name: "contains surrounding whitespace", prefix: "/up "},
		{name: "contains pattern wildcard", prefix: "/{id}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty"}}}})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("error = %v, want handler is required", err)
	}
}

func TestComposeWrapsMountErrors(t *testing.T) {
	t.Parallel()

	mountErr := errors.New("boom")
	_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "broken", err: mountErr}}})
	if !errors.Is(err, mountErr) {
		t.Fatalf("error = %v, want wrapped %v", err, mountErr)
	}
}

func TestComposeRejectsExternalDestinations(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"/auth", "/auth/", "/dashboard", "/dashboard/contacts"} {
		_, err := Compose(ComposeInput{
			Modules: []module.Module{
				stubModule{id: "claim", mount: module.Mount{Prefix: prefix, Handler: http.NotFoundHandler()}},
			},
		})
		if err == nil {
			t.Fatalf("prefix %q: expected external destination error", prefix)
		}
	}
}

func TestComposeRoutesToModules(t *testing.T) {
	t.Parallel()

	root, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})}},
			stubModule{id: "health", mount: module.Mount{Prefix: "/up", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	for path, want := range map[string]int{"/": http.StatusTeapot, "/up": http.StatusNoContent, "/elsewhere": http.StatusTeapot} {
		rr := httptest.NewRecorder()
		root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Fatalf("path %q status = %d, want %d", path, rr.Code, want)
		}
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	if s.err != nil {
		return module.Mount{}, s.err
	}
	return s.mount, nil
}
