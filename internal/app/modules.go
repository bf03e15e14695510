package app

import (
	"github.com/nfrund/folio/internal/module"
	"github.com/nfrund/folio/internal/modules/contact"
)

// NewModules returns every application module in boot order.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		contact.New(contactDeps(deps)),
	}
}
