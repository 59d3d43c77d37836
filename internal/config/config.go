// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the API process needs at startup.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`
	AdminKey    string `env:"ADMIN_KEY"`
	CORSOrigin  string `env:"CORS_ORIGIN" envDefault:"*"`
	Env         string `env:"ENV" envDefault:"dev"`

	RateLimitCreateMax           int `env:"RATE_LIMIT_CREATE_MAX" envDefault:"30"`
	RateLimitCreateWindowSeconds int `env:"RATE_LIMIT_CREATE_WINDOW_SECONDS" envDefault:"60"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
