// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Collector CollectorConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig holds quote store connection settings.
type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL,required"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int    `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
}

// CacheConfig holds settings for the computed-response cache.
type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

// CollectorConfig holds settings for the quote collection jobs.
type CollectorConfig struct {
	// MarketplaceBaseURL is the upstream travel marketplace API root.
	MarketplaceBaseURL string `env:"MARKETPLACE_BASE_URL" envDefault:"https://api3.myrealtrip.com"`

	// RequestTimeout bounds each upstream HTTP call.
	RequestTimeout time.Duration `env:"COLLECTOR_REQUEST_TIMEOUT" envDefault:"15s"`

	// Pacing is the delay between consecutive upstream calls for one city.
	Pacing time.Duration `env:"COLLECTOR_PACING" envDefault:"500ms"`

	// Concurrency is the number of cities collected in parallel.
	Concurrency int `env:"COLLECTOR_CONCURRENCY" envDefault:"2"`

	// OriginAirport is the IATA code flights depart from.
	OriginAirport string `env:"COLLECTOR_ORIGIN_AIRPORT" envDefault:"ICN"`

	// HotelWindowDays is how many days ahead hotel rates are sampled.
	HotelWindowDays int `env:"COLLECTOR_HOTEL_WINDOW_DAYS" envDefault:"90"`

	// HotelIntervalDays is the sampling interval within the hotel window.
	HotelIntervalDays int `env:"COLLECTOR_HOTEL_INTERVAL_DAYS" envDefault:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate store pool settings
	if cfg.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DATABASE_MAX_OPEN_CONNS must be at least 1")
	}
	if cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("DATABASE_MAX_IDLE_CONNS must not be negative")
	}
	if cfg.Database.MaxIdleConns > cfg.Database.MaxOpenConns {
		return fmt.Errorf("DATABASE_MAX_IDLE_CONNS (%d) must not exceed DATABASE_MAX_OPEN_CONNS (%d)",
			cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns)
	}

	// Validate cache TTL
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	// Validate collector settings
	if cfg.Collector.MarketplaceBaseURL == "" {
		return fmt.Errorf("MARKETPLACE_BASE_URL must not be empty")
	}
	if cfg.Collector.RequestTimeout <= 0 {
		return fmt.Errorf("COLLECTOR_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Collector.Pacing < 0 {
		return fmt.Errorf("COLLECTOR_PACING must not be negative")
	}
	if cfg.Collector.Concurrency < 1 {
		return fmt.Errorf("COLLECTOR_CONCURRENCY must be at least 1")
	}
	if len(cfg.Collector.OriginAirport) != 3 {
		return fmt.Errorf("COLLECTOR_ORIGIN_AIRPORT must be a 3-letter IATA code, got %q", cfg.Collector.OriginAirport)
	}
	if cfg.Collector.HotelWindowDays < 1 {
		return fmt.Errorf("COLLECTOR_HOTEL_WINDOW_DAYS must be at least 1")
	}
	if cfg.Collector.HotelIntervalDays < 1 {
		return fmt.Errorf("COLLECTOR_HOTEL_INTERVAL_DAYS must be at least 1")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
