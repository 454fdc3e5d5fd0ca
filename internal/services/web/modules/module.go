// Package modules defines the web module registry.
package modules

import (
	module "github.com/wacrm/wacrm/internal/services/web/module"
	"github.com/wacrm/wacrm/internal/services/web/modules/landing"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the request-scoped resolvers and shared collaborators
// handed to modules at composition time.
type Dependencies struct {
	ResolveState        module.ResolveState
	Outcomes            landing.OutcomeRecorder
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *zap.Logger
}
