package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is returned when the environment cannot be parsed into the target
// struct (missing required variables, type mismatches).
var ErrParse = errors.New("config: failed to parse environment")

// LoadEnv reads .env files into the process environment. Without arguments
// it tries the default ./.env and treats its absence as a no-op; explicitly
// named files must exist. Existing environment variables are never
// overwritten, so the real environment always wins over .env files.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		err := godotenv.Load()
		if err != nil && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("config: load env files %v: %w", paths, err)
	}
	return nil
}

// Load parses the current environment into a fresh T using `env` field tags.
func Load[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		var zero T
		return zero, errors.Join(ErrParse, err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return cfg
}
