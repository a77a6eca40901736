package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_WritesNamedFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(AppConfig{Name: "zoo-admin", LogPath: dir, LogMaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info("started")
	_ = logger.Sync()

	_, err = os.Stat(filepath.Join(dir, "zoo-admin.log"))
	assert.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitLogger_Level(t *testing.T) {
	dir := t.TempDir()

	debug, err := InitLogger(AppConfig{Name: "zoo-admin", LogPath: dir, Debug: true})
	require.NoError(t, err)
	assert.True(t, debug.Core().Enabled(zapcore.DebugLevel))

	warn, err := InitLogger(AppConfig{Name: "zoo-admin", LogPath: dir, Debug: true, LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, warn.Core().Enabled(zapcore.InfoLevel))

	_, err = InitLogger(AppConfig{Name: "zoo-admin", LogPath: dir, LogLevel: "loud"})
	assert.Error(t, err)
}
