package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutLogFile(t *testing.T) {
	log, closer := New("development", "")

	// The default config has no log file; a deferred Close must still be safe.
	require.NotNil(t, closer)
	require.NotPanics(t, func() { closer.Close() })

	log.Info().Msg("discarded")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turntable.log")
	log, closer := New("development", path)

	log.Info().Msg("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "env=development")
}

func TestLevelByEnvironment(t *testing.T) {
	dev, closer := New("development", "")
	defer closer.Close()
	assert.Equal(t, zerolog.DebugLevel, dev.GetLevel())

	prod, closer := New("production", "")
	defer closer.Close()
	assert.Equal(t, zerolog.InfoLevel, prod.GetLevel())
}