package infra

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerProductionEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("production", &buf)

	logger.Info().Str("event", "startup").Msg("listening")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "startup", line["event"])
	assert.Equal(t, "listening", line["message"])
}

func TestNewLoggerDevelopmentUsesConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("development", &buf)

	logger.Info().Msg("listening")

	var line map[string]interface{}
	assert.Error(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Contains(t, buf.String(), "listening")
}
