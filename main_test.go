package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/config"
	"snake-classic/store"
)

func defaultConfig() config.Config {
	return config.Config{
		Frontend:   config.FrontendRaylib,
		SpeedLevel: 5,
		Store:      config.StoreFile,
		DataDir:    "data",
		Sound:      true,
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(defaultConfig(), []string{
		"-frontend", "terminal", "-speed", "8", "-store", "memory", "-sound=false", "-seed", "42",
	})
	require.NoError(t, err)
	assert.Equal(t, config.FrontendTerminal, cfg.Frontend)
	assert.Equal(t, 8, cfg.SpeedLevel)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.False(t, cfg.Sound)
	assert.Equal(t, uint64(42), cfg.Seed)

	t.Run("no flags keeps the environment values", func(t *testing.T) {
		cfg, err := parseFlags(defaultConfig(), nil)
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("out of range speed falls back", func(t *testing.T) {
		cfg, err := parseFlags(defaultConfig(), []string{"-speed", "42"})
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.SpeedLevel)
	})

	t.Run("unknown frontend", func(t *testing.T) {
		_, err := parseFlags(defaultConfig(), []string{"-frontend", "web"})
		assert.Error(t, err)
	})
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	cfg := defaultConfig()
	cfg.Store = config.StoreMemory
	s, err := openStore(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, s)

	cfg.Store = config.StoreFile
	cfg.DataDir = t.TempDir()
	s, err = openStore(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Save(ctx, 90))
	assert.Equal(t, 90, store.LoadHighScore(ctx, s))
}
