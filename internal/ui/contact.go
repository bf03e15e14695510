package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/folio/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContactAck is shown after a successful submission.
const ContactAck = "Thanks for your message! I'll get back to you soon."

// ContactFailure is shown when the sink rejects a submission.
const ContactFailure = "Sorry, there was an error sending your message. Please try again later."

// ContactForm is the field state of the contact form.
type ContactForm struct {
	Name    string `form:"name" query:"name"`
	Email   string `form:"email" query:"email"`
	Subject string `form:"subject" query:"subject"`
	Message string `form:"message" query:"message"`
}

// Reset clears every field.
func (f *ContactForm) Reset() {
	*f = ContactForm{}
}

// IsEmpty reports whether all four fields are blank.
func (f ContactForm) IsEmpty() bool {
	return f == ContactForm{}
}

// ToMessage trims the fields and stamps a new submission.
func (f ContactForm) ToMessage() domain.ContactMessage {
	return domain.NewContactMessage(
		strings.TrimSpace(f.Name),
		strings.TrimSpace(f.Email),
		strings.TrimSpace(f.Subject),
		strings.TrimSpace(f.Message),
	)
}

// FieldErrors maps form field names to a user-facing message.
type FieldErrors map[string]string

// Error implements error so validation failures can be returned directly.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// FieldLabel is the display name of a form field, e.g. "Email".
func FieldLabel(field string) string {
	return cases.Title(language.English).String(field)
}

// Submit validates the form, hands it to the sink and clears the fields.
// The fields are kept when validation or the sink fails so the visitor can retry.
func Submit(ctx context.Context, f *ContactForm, sink domain.ContactSink) (domain.ContactMessage, error) {
	msg := f.ToMessage()
	if err := msg.Validate(); err != nil {
		return msg, toFieldErrors(err)
	}
	if err := sink.Submit(ctx, msg); err != nil {
		return msg, fmt.Errorf("submit contact message: %w", err)
	}
	f.Reset()
	return msg, nil
}

func toFieldErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := FieldErrors{}
	for _, v := range verrs {
		field := strings.ToLower(v.Field())
		switch v.Tag() {
		case "required":
			fe[field] = "This field is required."
		case "email":
			fe[field] = "Please enter a valid email address."
		default:
			fe[field] = "This value is not valid."
		}
	}
	return fe
}
