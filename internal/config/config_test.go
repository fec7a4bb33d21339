package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("WORKER_COUNT", "0")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.WorkerCount)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")
		_, err := Load()
		assert.ErrorContains(t, err, "memcached")
	})

	t.Run("bad integer", func(t *testing.T) {
		t.Setenv("WORKER_COUNT", "many")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLevel_Fallback(t *testing.T) {
	cfg := &Config{LogLevel: "loud"}
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}
