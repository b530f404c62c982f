package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed by reference into the router;
// nothing reads the environment after Load returns.
type Config struct {
	Port           string        `env:"PORT,             default=8080"`
	Env            string        `env:"ENV,              default=development"`
	SecretKey      string        `env:"SECRET_KEY"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL, default=24h"`
	LogLevel       string        `env:"LOG_LEVEL,        default=info"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/lifeos?sslmode=disable"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
