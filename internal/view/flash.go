// Package view holds request-scoped view state (flash messages) and the
// bridges between templ and gomponents.
package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData is the set of messages shown once on the next full page render.
type FlashData struct {
	Success []string
	Error   []string
}

// IsEmpty reports whether there is nothing to show.
func (f FlashData) IsEmpty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

func setFlash(c echo.Context, key, message string) error {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return fmt.Errorf("flash session: %w", err)
	}
	sess.AddFlash(message, key)
	return sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess queues a success message.
func SetFlashSuccess(c echo.Context, message string) error {
	return setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message.
func SetFlashError(c echo.Context, message string) error {
	return setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
// A missing or unreadable session yields no messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns; the session is saved only if something was read.
	data.Success = toStrings(sess.Flashes(flashKeySuccess))
	data.Error = toStrings(sess.Flashes(flashKeyError))
	if !data.IsEmpty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
