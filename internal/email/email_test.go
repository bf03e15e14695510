package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/folio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	t.Run("log provider", func(t *testing.T) {
		sender, err := NewEmailService(&config.Config{EmailProvider: "log"})
		require.NoError(t, err)
		assert.IsType(t, &LogSender{}, sender)
		assert.NoError(t, sender.Send(context.Background(), "a@b.c", "Hi", "<p>Hello</p>"))
	})

	t.Run("resend requires an api key", func(t *testing.T) {
		_, err := NewEmailService(&config.Config{EmailProvider: "resend"})
		assert.ErrorContains(t, err, "EMAIL_API_KEY")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEmailService(&config.Config{EmailProvider: "pigeon"})
		assert.ErrorIs(t, err, ErrUnknownProvider)
		assert.ErrorContains(t, err, `"pigeon"`)
	})

	t.Run("provider names ignore case and spacing", func(t *testing.T) {
		sender, err := NewEmailService(&config.Config{EmailProvider: " Resend ", EmailAPIKey: "key"})
		require.NoError(t, err)
		assert.IsType(t, &ResendSender{}, sender)
	})

	t.Run("unset provider logs", func(t *testing.T) {
		sender, err := NewEmailService(&config.Config{})
		require.NoError(t, err)
		assert.IsType(t, &LogSender{}, sender)
	})
}

func TestResendSender_Send(t *testing.T) {
	var got resendPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewResendSender("key-123", "")
	sender.endpoint = srv.URL

	err := sender.Send(context.Background(), "me@example.com", "New message", "<p>Hi</p>")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", got.To)
	assert.Equal(t, "Folio <onboarding@resend.dev>", got.From)
	assert.Equal(t, "<p>Hi</p>", got.HTML)
}

func TestResendSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	sender := NewResendSender("key", "Me <me@example.com>")
	sender.endpoint = srv.URL

	err := sender.Send(context.Background(), "x@example.com", "s", "b")
	assert.ErrorContains(t, err, "status 422")
}
