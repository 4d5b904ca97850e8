package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults to in-memory", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		t.Setenv("HISTORY_CAPACITY", "")

		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
		assert.Nil(t, cfg.Pg)
	})

	t.Run("postgres requires a connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")

		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("postgres config", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/calc")
		t.Setenv("PG_MAX_CONNS", "4")

		cfg, err := LoadEnv()
		require.NoError(t, err)
		require.NotNil(t, cfg.Pg)
		assert.Equal(t, "postgres://u:p@localhost:5432/calc", cfg.Pg.ConnStr)
		assert.Equal(t, int32(4), cfg.Pg.MaxConns)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("bad capacity", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "in_mem")
		t.Setenv("HISTORY_CAPACITY", "-3")
		_, err := LoadEnv()
		assert.Error(t, err)
	})
}

func TestNewHistory_InMem(t *testing.T) {
	h, err := NewHistory(context.Background(), StorageConfig{Type: storage.InMem, InMemCapacity: 2})
	require.NoError(t, err)
	defer h.Cleanup()

	assert.True(t, h.Health.Healthy(context.Background()))
	recent, err := h.Store.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestNewHistory_Unsupported(t *testing.T) {
	_, err := NewHistory(context.Background(), StorageConfig{Type: "es"})
	assert.ErrorContains(t, err, "unsupported storer type: es")
}
