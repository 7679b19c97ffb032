package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	log := slog.New(slog.DiscardHandler)
	ctx := NewContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "rizoma.log")

	log, closer := New(Options{Level: slog.LevelInfo, File: path, MaxSizeMB: 1})
	log.Info("record stored", "address", "abc")
	log.Debug("hidden")
	require.NoError(t, closer.Close())

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "record stored")
	assert.Contains(t, string(body), "address=abc")
	assert.NotContains(t, string(body), "hidden")
}
