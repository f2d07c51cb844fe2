package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToFileAndTee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "physio.log")
	var tee bytes.Buffer

	logger, closer, err := Setup(SetupParams{File: path, Level: "info", MaxSizeMB: 1, Tee: &tee})
	require.NoError(t, err)

	logger.Info("toggle", "exercise_id", "wall-sits-1")
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exercise_id=wall-sits-1")
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, tee.String(), "exercise_id=wall-sits-1")
}

func TestSetup_NoOutputsDiscards(t *testing.T) {
	logger, closer, err := Setup(SetupParams{})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestSetup_BadLevel(t *testing.T) {
	_, _, err := Setup(SetupParams{Level: "chatty"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
