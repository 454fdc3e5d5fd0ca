// Package health serves the liveness check.
package health

import (
	"net/http"

	module "github.com/wacrm/wacrm/internal/services/web/module"
	"github.com/wacrm/wacrm/internal/services/web/platform/httpx"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
)

const body = "ok"

// Module provides the health route.
type Module struct{}

// New returns the health module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "health"
}

// Mount wires the health route.
func (Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		_ = httpx.WriteText(w, http.StatusOK, body)
	})
	mux.Handle(routepath.Health, httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	return module.Mount{Prefix: routepath.Health, Handler: mux}, nil
}
