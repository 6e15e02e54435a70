package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const appName = "cinema-booking-cli"

// Config holds the few knobs the application reads from the environment. A
// .env file in the working directory is honored when present.
type Config struct {
	// OMDbAPIKey enables the live rating lookup. When empty the lookup is
	// skipped and the catalog's static rating is shown.
	OMDbAPIKey string

	// DataDir is where the bookings file lives. Defaults to the per-user
	// config directory.
	DataDir string
}

// Load reads configuration from .env and the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		OMDbAPIKey: os.Getenv("OMDB_API_KEY"),
		DataDir:    os.Getenv("CINEMA_DATA_DIR"),
	}
	if cfg.DataDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.DataDir = filepath.Join(dir, appName)
		} else {
			cfg.DataDir = "."
		}
	}
	return cfg
}

// BookingsPath is the location of the durable bookings file.
func (c Config) BookingsPath() string {
	return filepath.Join(c.DataDir, "bookings.json")
}
