package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("shown", "section", "about")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "about", entry["section"])
}

func TestNewWithWriter_TextDefaultsToDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "", "")

	logger.Debug("visible at debug")
	assert.Contains(t, buf.String(), "visible at debug")
	assert.Contains(t, buf.String(), "source=")
}
