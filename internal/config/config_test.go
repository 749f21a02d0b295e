package config_test

import (
	"testing"
	"time"

	"github.com/Vasu1712/chatter-backend/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("it should apply defaults around the required secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.Addr)
		require.Equal(t, config.BackendMemory, cfg.StoreBackend)
		require.Equal(t, 720*time.Hour, cfg.TokenTTL)
	})

	t.Run("it should fail without a secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("it should reject an unknown store backend", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("STORE_BACKEND", "mongo")

		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("it should require a database url with the postgres backend", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("STORE_BACKEND", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := config.Load()
		require.Error(t, err)
	})
}
