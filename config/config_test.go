package config_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korjavin/questiongen/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("FIXTURE_PATH", "")
		t.Setenv("DB_PATH", "")

		cfg := config.Load()
		assert.Equal(t, "large_questions.csv", cfg.FixturePath)
		assert.Equal(t, "./data/fixtures.db", cfg.DatabasePath)
	})

	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("FIXTURE_PATH", "/tmp/q.csv")
		t.Setenv("DB_PATH", "/tmp/q.db")

		cfg := config.Load()
		assert.Equal(t, "/tmp/q.csv", cfg.FixturePath)
		assert.Equal(t, "/tmp/q.db", cfg.DatabasePath)
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("Level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		require.NoError(t, config.InitLogger())
		assert.Equal(t, logrus.DebugLevel, config.Log().Logger.GetLevel())
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		assert.Error(t, config.InitLogger())
	})
}
