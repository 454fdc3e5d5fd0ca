// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/wacrm/wacrm/internal/services/web/principal"
)

// ResolveState resolves the visitor's auth state for a request.
type ResolveState func(*http.Request) principal.State

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
