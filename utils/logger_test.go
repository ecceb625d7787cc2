package utils

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("debug", "json", &buf)
	require.NoError(t, err)

	logger.Debug("generation advanced", "generation", 3)
	assert.Contains(t, buf.String(), `"msg":"generation advanced"`)
	assert.Contains(t, buf.String(), `"generation":3`)

	buf.Reset()
	logger, err = NewLogger("warn", "text", &buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")

	_, err = NewLogger("info", "xml", &buf)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
