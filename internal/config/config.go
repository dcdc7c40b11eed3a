package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// Config holds application configuration values.
type Config struct {
	DatabaseDSN     string
	HTTPPort        string
	DebounceWindow  time.Duration
	BestOffersLimit int
	SearchLimit     int
}

// Load reads configuration from environment variables with reasonable
// defaults.
func Load() Config {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "esculapi.db"
	}

	debounceMS := cast.ToInt(os.Getenv("DEBOUNCE_MS"))
	if debounceMS <= 0 {
		debounceMS = 500
	}

	bestOffers := cast.ToInt(os.Getenv("BEST_OFFERS_LIMIT"))
	if bestOffers <= 0 {
		bestOffers = 5
	}

	searchLimit := cast.ToInt(os.Getenv("SEARCH_LIMIT"))
	if searchLimit <= 0 {
		searchLimit = 25
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	return Config{
		DatabaseDSN:     dsn,
		HTTPPort:        port,
		DebounceWindow:  time.Duration(debounceMS) * time.Millisecond,
		BestOffersLimit: bestOffers,
		SearchLimit:     searchLimit,
	}
}
