// Package config loads daemon configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v7"
)

// Prefix applied to every environment key.
const Prefix = "CELERIX_DIR_"

// Config carries everything the daemon needs to boot.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"7102"`
	DataDir  string `env:"DATA_DIR" envDefault:"./data"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// MasterKey enables AES-GCM encryption of the store file at rest.
	// Must be exactly 32 bytes when set.
	MasterKey string `env:"MASTER_KEY"`

	DisableTLS bool `env:"DISABLE_TLS"`

	// MigrateFrom points at a legacy plaintext store file to import on boot.
	MigrateFrom string `env:"MIGRATE_FROM"`

	// Bootstrap credentials create the first admin when the store is empty.
	BootstrapEmail    string `env:"BOOTSTRAP_EMAIL"`
	BootstrapPassword string `env:"BOOTSTRAP_PASSWORD"`
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, err
	}
	if cfg.MasterKey != "" && len(cfg.MasterKey) != 32 {
		return Config{}, fmt.Errorf("%sMASTER_KEY must be exactly 32 bytes, got %d", Prefix, len(cfg.MasterKey))
	}
	return cfg, nil
}

// MasterKeyBytes returns the at-rest encryption key, or nil when disabled.
func (c Config) MasterKeyBytes() []byte {
	if c.MasterKey == "" {
		return nil
	}
	return []byte(c.MasterKey)
}
