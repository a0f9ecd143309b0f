package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"snake-classic/game/types"
)

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"

	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds the application's configuration values.
type Config struct {
	Frontend   string // raylib or terminal
	SpeedLevel int    // initial speed, 1..10
	Store      string // file, redis or memory
	DataDir    string // directory of the file store
	RedisAddr  string // host:port of the redis store
	RedisDB    int    // redis logical database
	Sound      bool   // play sound effects
	Seed       uint64 // food placement seed, 0 = time based
	ResetSpeed bool   // restart restores the default speed level
	Debug      bool   // write logs to logs/snake.log
}

// Load reads configuration from the environment, loading a .env file first if present.
func Load() (Config, error) {
	// a missing .env is the normal case
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[APP] [WARN] .env could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var err error
	cfg := Config{
		Frontend:  getEnvWithDefault("SNAKE_FRONTEND", FrontendRaylib),
		Store:     getEnvWithDefault("SNAKE_STORE", StoreFile),
		DataDir:   getEnvWithDefault("SNAKE_DATA_DIR", "data"),
		RedisAddr: getEnvWithDefault("SNAKE_REDIS_ADDR", "localhost:6379"),
	}

	// an unusable level falls back to the default instead of failing
	cfg.SpeedLevel = int(types.ClampSpeedLevel(getEnvAsIntWithDefault("SNAKE_SPEED_LEVEL", int(types.DefaultSpeedLevel))))

	if cfg.RedisDB, err = getEnvAsInt("SNAKE_REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.Sound, err = getEnvAsBool("SNAKE_SOUND", true); err != nil {
		return Config{}, err
	}
	if cfg.ResetSpeed, err = getEnvAsBool("SNAKE_RESET_SPEED", false); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = getEnvAsBool("SNAKE_DEBUG", false); err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt("SNAKE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	if seed < 0 {
		return Config{}, errors.Errorf("SNAKE_SEED must be non-negative, got %d", seed)
	}
	cfg.Seed = uint64(seed)

	return cfg, cfg.Validate()
}

// Validate checks the enumerated settings
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal:
	default:
		return errors.Errorf("unknown frontend %q", c.Frontend)
	}
	switch c.Store {
	case StoreFile, StoreRedis, StoreMemory:
	default:
		return errors.Errorf("unknown store %q", c.Store)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return 0, errors.Wrapf(err, "environment variable %s must be an integer", key)
	}
	return value, nil
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, err := getEnvAsInt(key, defaultValue)
	if err != nil {
		log.Printf("[APP] [WARN] %v, using %d", err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		return false, errors.Wrapf(err, "environment variable %s must be a boolean", key)
	}
	return value, nil
}
