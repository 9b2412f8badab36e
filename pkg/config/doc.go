// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: LoadEnv
// reads optional .env files into the process environment, and Load parses
// the environment into any struct with `env` field tags.
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	cfg, err := config.Load[LogConfig]()
//
// Must variants panic on failure for configuration that is critical at
// startup.
package config
