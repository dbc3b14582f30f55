package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is everything the bot reads from the environment at startup.
// DISCORD_TOKEN is the only required value; a missing token aborts startup.
type Config struct {
	DiscordToken     string   `env:"DISCORD_TOKEN,required,notEmpty"`
	Version          string   `env:"SMYKLOT_VERSION"`
	Environment      string   `env:"SMYKLOT_ENV" envDefault:"production"`
	MuteRoleID       string   `env:"MUTE_ROLE_ID"`
	GeneralChannelID string   `env:"GENERAL_CHANNEL_ID"`
	Prefixes         []string `env:"COMMAND_PREFIXES" envSeparator:","`
	Owners           []string `env:"BOT_OWNERS" envSeparator:","`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile          string   `env:"LOG_FILE"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
