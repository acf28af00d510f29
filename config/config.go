package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all seeding tool configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// Seeding configuration
	SeedPassword string // plaintext password assigned to every seeded user
	RandomSeed   int64  // seed for the pseudo-random generator; 0 means time-based

	// Environment
	Environment string // "development", "test" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Seeding defaults
		SeedPassword: "Hola1234",
		RandomSeed:   0,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if password := os.Getenv("SEED_PASSWORD"); password != "" {
		config.SeedPassword = password
	}
	if seed := os.Getenv("SEED_RANDOM"); seed != "" {
		parsedSeed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_RANDOM value %q: %w", seed, err)
		}
		config.RandomSeed = parsedSeed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
