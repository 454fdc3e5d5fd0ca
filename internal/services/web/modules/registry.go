package modules

import (
	"github.com/wacrm/wacrm/internal/services/web/modules/health"
	"github.com/wacrm/wacrm/internal/services/web/modules/landing"
)

// DefaultModules returns the modules mounted by the web service.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		landing.New(
			landing.WithStateResolver(deps.ResolveState),
			landing.WithOutcomeRecorder(deps.Outcomes),
			landing.WithSchemePolicy(deps.RequestSchemePolicy),
			landing.WithLogger(deps.Logger),
		),
		health.New(),
	}
}
