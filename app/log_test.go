package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWritesAndCloses(t *testing.T) {
	prev := slog.Default()

	t.Cleanup(func() {
		slog.SetDefault(prev)
	})

	path := filepath.Join(t.TempDir(), "tally.log")

	setupLogging(path, true)
	require.NotNil(t, logFile)

	slog.Debug("timer started", slog.String("user", "ayo"))

	require.NoError(t, closeLogging())
	assert.Nil(t, logFile)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "timer started")
	assert.Contains(t, string(b), "user=ayo")

	// closing twice is harmless
	assert.NoError(t, closeLogging())
}
