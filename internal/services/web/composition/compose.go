// Package composition wires the module registry to the root route tree.
package composition

import (
	"net/http"

	webapp "github.com/wacrm/wacrm/internal/services/web/app"
	"github.com/wacrm/wacrm/internal/services/web/modules"
)

// ModuleRegistry builds the web module set from composition input.
type ModuleRegistry interface {
	Build(modules.Dependencies) []modules.Module
}

// RegistryFunc adapts a function to ModuleRegistry.
type RegistryFunc func(modules.Dependencies) []modules.Module

// Build calls f.
func (f RegistryFunc) Build(deps modules.Dependencies) []modules.Module {
	return f(deps)
}

// ComposeInput describes the contracts needed to compose the application mux.
type ComposeInput struct {
	Dependencies modules.Dependencies
	Registry     ModuleRegistry
}

// ComposeAppHandler builds the web handler from the registry's modules.
func ComposeAppHandler(input ComposeInput) (http.Handler, error) {
	registry := input.Registry
	if registry == nil {
		registry = RegistryFunc(modules.DefaultModules)
	}
	root, err := webapp.Compose(webapp.ComposeInput{Modules: registry.Build(input.Dependencies)})
	if err != nil {
		return nil, err
	}
	return root, nil
}
