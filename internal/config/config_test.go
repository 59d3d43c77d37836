package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears variables for the test while letting t.Setenv restore
// whatever the ambient shell had.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "CORS_ORIGIN", "RATE_LIMIT_CREATE_MAX")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "*", cfg.CORSOrigin)
	require.Equal(t, 30, cfg.RateLimitCreateMax)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_CREATE_MAX", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, 5, cfg.RateLimitCreateMax)
}

func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_CREATE_MAX", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env")
}
