package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// InitLogger points the shared logger at stderr and applies LOG_LEVEL.
// Stdout stays reserved for command results.
func InitLogger() error {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		parsed, err := logrus.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	return nil
}

// Log returns an entry on the shared logger
func Log() *logrus.Entry {
	return logrus.NewEntry(logger)
}
