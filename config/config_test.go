package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SNAKE_FRONTEND", "SNAKE_SPEED_LEVEL", "SNAKE_STORE", "SNAKE_DATA_DIR",
	"SNAKE_REDIS_ADDR", "SNAKE_REDIS_DB", "SNAKE_SOUND", "SNAKE_SEED",
	"SNAKE_RESET_SPEED", "SNAKE_DEBUG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Frontend:   FrontendRaylib,
		SpeedLevel: 5,
		Store:      StoreFile,
		DataDir:    "data",
		RedisAddr:  "localhost:6379",
		Sound:      true,
	}, cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNAKE_FRONTEND", "terminal")
	t.Setenv("SNAKE_SPEED_LEVEL", "8")
	t.Setenv("SNAKE_STORE", "redis")
	t.Setenv("SNAKE_REDIS_ADDR", "cache:6380")
	t.Setenv("SNAKE_REDIS_DB", "2")
	t.Setenv("SNAKE_SOUND", "false")
	t.Setenv("SNAKE_SEED", "1234")
	t.Setenv("SNAKE_RESET_SPEED", "true")
	t.Setenv("SNAKE_DEBUG", "1")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, 8, cfg.SpeedLevel)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.False(t, cfg.Sound)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.True(t, cfg.ResetSpeed)
	assert.True(t, cfg.Debug)
}

func TestFromEnvSpeedFallback(t *testing.T) {
	for _, v := range []string{"11", "0", "fast"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SNAKE_SPEED_LEVEL", v)
			cfg, err := FromEnv()
			require.NoError(t, err)
			assert.Equal(t, 5, cfg.SpeedLevel)
		})
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := map[string]string{
		"SNAKE_FRONTEND": "vr",
		"SNAKE_STORE":    "s3",
		"SNAKE_SOUND":    "loud",
		"SNAKE_SEED":     "-1",
		"SNAKE_REDIS_DB": "one",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	for _, k := range envKeys {
		require.NoError(t, os.Unsetenv(k))
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SNAKE_FRONTEND=terminal\nSNAKE_SPEED_LEVEL=2\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, 2, cfg.SpeedLevel)
}

func TestLoadWithoutDotEnvIsQuiet(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FrontendRaylib, cfg.Frontend)
	assert.Empty(t, buf.String())
}
