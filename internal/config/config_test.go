package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atharv2285/Stage-portdesign/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "UPSTREAM_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"RATE_LIMIT_RPM", "LOGODEV_TOKEN",
	} {
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "5001", cfg.HTTPPort)
	require.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 600, cfg.RateLimitRPM)
	// logo.dev serves images only with a token, so the publishable key ships
	// as a default rather than leaving image URLs broken.
	require.Equal(t, "pk_K9f7eo8kTJ6Z_hhQYR9LGQ", cfg.LogoDevToken)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOGODEV_TOKEN", "pk_custom")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, "pk_custom", cfg.LogoDevToken)
	require.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
}
