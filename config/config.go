package config

import (
	"os"

	"github.com/korjavin/questiongen/fixtures"
)

// Config holds the settings of the seed and verify commands
type Config struct {
	FixturePath  string
	DatabasePath string
}

// Load loads the configuration from environment variables
func Load() *Config {
	fixturePath := os.Getenv("FIXTURE_PATH")
	if fixturePath == "" {
		fixturePath = fixtures.DefaultPath
	}

	// Set database path with default
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/fixtures.db"
	}

	return &Config{
		FixturePath:  fixturePath,
		DatabasePath: dbPath,
	}
}
