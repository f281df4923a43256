package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, parsed from the environment.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	ListingFee    int64  `env:"LISTING_FEE" envDefault:"25"`
	TreasuryOwner string `env:"TREASURY_OWNER" envDefault:"treasury-owner"`
	EscrowAccount string `env:"ESCROW_ACCOUNT" envDefault:"market-escrow"`

	// EventBus selects the event publisher: none, redis or nats.
	EventBus  string `env:"EVENT_BUS" envDefault:"none"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	NATSURL   string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config from environment: %w", err)
	}
	switch cfg.EventBus {
	case "none", "redis", "nats":
	default:
		return Config{}, fmt.Errorf("parse config: unknown EVENT_BUS %q", cfg.EventBus)
	}
	return cfg, nil
}
