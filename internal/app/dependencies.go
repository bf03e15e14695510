package app

import (
	"github.com/nfrund/folio/internal/handlers"
	"github.com/nfrund/folio/internal/modules/contact"
	"github.com/nfrund/folio/internal/pubsub"
	"github.com/nfrund/folio/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Site       handlers.SiteSource
}

// contactDeps creates the dependency struct for the contact module.
func contactDeps(deps Dependencies) contact.Dependencies {
	return contact.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
		Site:       deps.Site,
	}
}
