package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfrund/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	got []domain.ContactMessage
	err error
}

func (s *recordingSink) Submit(_ context.Context, msg domain.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, msg)
	return nil
}

func TestSubmitClearsFields(t *testing.T) {
	sink := &recordingSink{}
	form := ContactForm{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}

	msg, err := Submit(context.Background(), &form, sink)
	require.NoError(t, err)
	assert.True(t, form.IsEmpty(), "all four fields are reset after submission")

	require.Len(t, sink.got, 1)
	assert.Equal(t, msg.ID, sink.got[0].ID)
	assert.Equal(t, "Jane", sink.got[0].Name)
	assert.Equal(t, "jane@x.com", sink.got[0].Email)
	assert.Equal(t, "Hi", sink.got[0].Subject)
	assert.Equal(t, "Hello", sink.got[0].Message)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	sink := &recordingSink{}
	form := ContactForm{Name: "Jane", Email: "nope", Message: "  "}

	_, err := Submit(context.Background(), &form, sink)
	require.Error(t, err)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Please enter a valid email address.", fe["email"])
	assert.Equal(t, "This field is required.", fe["subject"])
	assert.Equal(t, "This field is required.", fe["message"])
	assert.NotContains(t, fe, "name")

	assert.Empty(t, sink.got)
	assert.Equal(t, "Jane", form.Name, "fields are kept for correction")
}

func TestSubmitKeepsFieldsWhenSinkFails(t *testing.T) {
	sink := &recordingSink{err: errors.New("bus closed")}
	form := ContactForm{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"}

	_, err := Submit(context.Background(), &form, sink)
	require.Error(t, err)
	assert.False(t, form.IsEmpty())
}

func TestCopyright(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "© 2026 Cam. All rights reserved.", Copyright("Cam", now))
}
