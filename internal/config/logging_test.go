package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballpit.log")
	logger, closer, err := OpenLogger(path, "debug")
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	logger.Debug("hello", "bodies", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "bodies=3")
}

func TestOpenLoggerDiscard(t *testing.T) {
	logger, closer, err := OpenLogger("", "")
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestOpenLoggerBadLevel(t *testing.T) {
	_, _, err := OpenLogger("", "shouty")
	assert.Error(t, err)
}
