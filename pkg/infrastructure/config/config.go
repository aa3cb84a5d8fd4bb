// Package config resolves simulation defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/vsinha/stocksim/pkg/domain/entities"
)

// Environment variable names
const (
	EnvSupplies   = "STOCKSIM_SUPPLIES"
	EnvDays       = "STOCKSIM_DAYS"
	EnvMeanEvents = "STOCKSIM_MEAN_EVENTS"
	EnvMaxQty     = "STOCKSIM_MAX_QTY"
	EnvSeed       = "STOCKSIM_SEED"
	EnvKLast      = "STOCKSIM_K_LAST"
	EnvFormat     = "STOCKSIM_FORMAT"
	EnvStartDate  = "STOCKSIM_START_DATE"
)

// Config holds the simulation parameters
type Config struct {
	Supplies   int
	Days       int
	MeanEvents int
	MaxQty     int
	Seed       int64
	KLast      int
	Format     string
	// StartDate anchors supply expiry and is the last simulated consumption day
	StartDate time.Time
}

// Default returns the built-in defaults, with StartDate set to today's date
func Default() Config {
	return Config{
		Supplies:   25,
		Days:       14,
		MeanEvents: 8,
		MaxQty:     15,
		Seed:       42,
		KLast:      5,
		Format:     "text",
		StartDate:  entities.CalendarDate(time.Now()),
	}
}

// Load reads environment variables (optionally from envFile) over the defaults.
// A missing env file is not an error; a malformed value is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env is fine when configuration comes from the environment directly
		_ = godotenv.Load()
	}

	cfg := Default()
	var err error

	if cfg.Supplies, err = getenvInt(EnvSupplies, cfg.Supplies); err != nil {
		return nil, err
	}
	if cfg.Days, err = getenvInt(EnvDays, cfg.Days); err != nil {
		return nil, err
	}
	if cfg.MeanEvents, err = getenvInt(EnvMeanEvents, cfg.MeanEvents); err != nil {
		return nil, err
	}
	if cfg.MaxQty, err = getenvInt(EnvMaxQty, cfg.MaxQty); err != nil {
		return nil, err
	}
	if cfg.KLast, err = getenvInt(EnvKLast, cfg.KLast); err != nil {
		return nil, err
	}

	seed, err := getenvInt(EnvSeed, int(cfg.Seed))
	if err != nil {
		return nil, err
	}
	cfg.Seed = int64(seed)

	cfg.Format = getenvWithDefault(EnvFormat, cfg.Format)

	if raw := os.Getenv(EnvStartDate); raw != "" {
		cfg.StartDate, err = ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvStartDate, err)
		}
	}

	return cfg.validated()
}

func (c Config) validated() (*Config, error) {
	switch c.Format {
	case "text", "json", "csv":
	default:
		return nil, fmt.Errorf("%s must be one of text, json, csv, got %q", EnvFormat, c.Format)
	}
	return &c, nil
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(entities.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return t, nil
}

func getenvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
