package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-wide bot configuration. It is built once at
// startup and stays immutable for the process lifetime; mutable state lives
// in the SettingsStore instead.
type Config struct {
	Prefix    string `env:"WABOT_PREFIX" envDefault:"!"`
	SplitArgs string `env:"WABOT_SPLIT_ARGS" envDefault:"|"`

	OwnerNumber string `env:"WABOT_OWNER_NUMBER"`
	OwnerName   string `env:"WABOT_OWNER_NAME" envDefault:"Owner"`

	// CountryCode replaces a leading "0" in broadcast recipient numbers.
	CountryCode string `env:"WABOT_COUNTRY_CODE" envDefault:"62"`

	BroadcastDelayMS int `env:"WABOT_BROADCAST_DELAY_MS" envDefault:"1000"`

	BridgeURL string `env:"WABOT_BRIDGE_URL" envDefault:"ws://127.0.0.1:3001/ws"`

	DemoNumber string `env:"WABOT_DEMO_NUMBER"`
	DemoName   string `env:"WABOT_DEMO_NAME" envDefault:"Demo Target"`

	// Locale and Timezone are carried for presentation parity; core logic
	// does not read them.
	Locale   string `env:"WABOT_LOCALE" envDefault:"id"`
	Timezone string `env:"WABOT_TIMEZONE" envDefault:"Asia/Jakarta"`

	AIProvider string `env:"WABOT_AI_PROVIDER" envDefault:"http"`
	AIURL      string `env:"WABOT_AI_URL"`
	AIKey      string `env:"WABOT_AI_KEY"`
	AIModel    string `env:"WABOT_AI_MODEL"`

	LogLevel string `env:"WABOT_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"WABOT_LOG_FILE"`

	SettingsFile string `env:"WABOT_SETTINGS_FILE" envDefault:"config/settings.json"`
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// BroadcastDelay returns the configured inter-send broadcast delay.
func (c *Config) BroadcastDelay() time.Duration {
	if c.BroadcastDelayMS <= 0 {
		return 0
	}
	return time.Duration(c.BroadcastDelayMS) * time.Millisecond
}
