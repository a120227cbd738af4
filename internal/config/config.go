// Package config loads process configuration from the environment once at
// startup. The resulting Config is treated as immutable.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MinJWTSecretLength is the shortest secret accepted for HMAC-SHA256 signing.
const MinJWTSecretLength = 32

// Config holds every operator-tunable setting of the server.
type Config struct {
	Port         string `env:"PORT"          envDefault:"5000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"todo_list.db"`
	JWTSecret    string `env:"JWT_SECRET,required"`
	BcryptCost   int    `env:"BCRYPT_COST"   envDefault:"12"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters for HMAC-SHA256 security", MinJWTSecretLength)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
