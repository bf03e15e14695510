package registry

import (
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/metrics"
)

// Service keys shared between the server and the modules.
const (
	MetricsKey     Key[*metrics.Manager]   = "core.metrics"
	EmailSenderKey Key[domain.EmailSender] = "core.email"
	ContactSinkKey Key[domain.ContactSink] = "contact.sink"
)
