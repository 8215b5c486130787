package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// DatabaseDriver selects the GORM dialector: "sqlite" or "postgres".
	// The DSN is a file path for sqlite and a key=value string for postgres.
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseDSN    string `env:"DATABASE_DSN" envDefault:"inventory.db"`

	// Products with quantity <= this value appear in the low-stock report
	// when the caller does not pass an explicit threshold.
	LowStockThreshold int64 `env:"LOW_STOCK_THRESHOLD" envDefault:"10"`

	CORSOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if cfg.LowStockThreshold < 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative, got %d", cfg.LowStockThreshold)
	}

	if cfg.DatabaseDriver == "sqlite" && cfg.DatabaseDSN == "inventory.db" {
		slog.Warn("DATABASE_DSN not set, using local sqlite file inventory.db")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		slog.Warn("CORS_ALLOWED_ORIGINS not set, allowing only the local dev frontend")
	}

	return &cfg, nil
}
