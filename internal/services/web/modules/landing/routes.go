package landing

import (
	"net/http"

	"github.com/wacrm/wacrm/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	// GET patterns also match HEAD.
	mux.HandleFunc(http.MethodGet+" "+routepath.RootExact, h.handleLanding)
	mux.HandleFunc(routepath.RootExact, h.handleMethodNotAllowed)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
