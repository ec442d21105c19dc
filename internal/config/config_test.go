package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	require.Equal(t, 120*time.Second, cfg.API.Timeout)
	require.Empty(t, cfg.Viewer.Command)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TURNTABLE_API_BASEURL", "https://convert.example.com")
	t.Setenv("TURNTABLE_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://convert.example.com", cfg.API.BaseURL)
	require.Equal(t, "production", cfg.Environment)
}
