package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	BotToken    string     `env:"BOT_TOKEN,required"`
	AdminID     int64      `env:"ADMIN_ID,required"`
	HTTPAddr    string     `env:"HTTP_ADDR" envDefault:":3000"`
	DBPath      string     `env:"DB_PATH" envDefault:"data.db"`
	WebDir      string     `env:"WEB_DIR" envDefault:"web"`
	SeedPlayers []string   `env:"SEED_PLAYERS" envSeparator:","`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func Load() (*Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
