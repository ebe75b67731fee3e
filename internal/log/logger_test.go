package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Output: &buf, JSON: true})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("profile", "production").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"profile":"production"`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestNewUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "loud", Output: &buf})
	require.Error(t, err)

	logger.Info().Msg("still logged")
	assert.Contains(t, buf.String(), "still logged")
}
