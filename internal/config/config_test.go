package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "configured-secret", cfg.JWTSecret)
	require.Equal(t, "9090", cfg.ServerPort)
	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "5432", cfg.DBPort)
}
