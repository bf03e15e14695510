package email

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
)

// Email providers accepted in EMAIL_PROVIDER.
const (
	ProviderLog    = "log"
	ProviderResend = "resend"
)

// ErrUnknownProvider is returned for an EMAIL_PROVIDER value with no sender.
var ErrUnknownProvider = errors.New("unknown email provider")

// NewEmailService picks the sender that delivers contact notifications. An
// unset provider logs messages instead of sending them.
func NewEmailService(cfg config.Provider) (domain.EmailSender, error) {
	switch provider := strings.ToLower(strings.TrimSpace(cfg.GetEmailProvider())); provider {
	case ProviderLog, "":
		return &LogSender{senderAddress: cfg.GetEmailSender()}, nil
	case ProviderResend:
		if cfg.GetEmailAPIKey() == "" {
			return nil, errors.New("email provider is 'resend' but EMAIL_API_KEY is not set")
		}
		return NewResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
