package contact

import (
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/pubsub"
)

// Submitted carries every accepted contact message to the notifier.
var Submitted = pubsub.NewEvent[domain.ContactMessage]("contact.submitted")
