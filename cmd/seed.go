package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/korjavin/questiongen/config"
	"github.com/korjavin/questiongen/database"
	"github.com/korjavin/questiongen/fixtures"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the fixture into the SQLite question bank",
	Long: `Reads FIXTURE_PATH (default large_questions.csv), verifies it and replaces
the contents of the questions table in DB_PATH (default ./data/fixtures.db).`,
	Args:    cobra.NoArgs,
	PreRunE: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := config.Log().WithFields(logrus.Fields{
			"fixture": cfg.FixturePath,
			"db":      cfg.DatabasePath,
		})

		questions, err := fixtures.ReadFile(cfg.FixturePath)
		if err != nil {
			return fmt.Errorf("failed to read fixture: %w", err)
		}
		if err := fixtures.Verify(questions); err != nil {
			return fmt.Errorf("%s: %w", cfg.FixturePath, err)
		}

		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		if err := db.ReplaceQuestions(questions); err != nil {
			return fmt.Errorf("failed to seed questions: %w", err)
		}

		count, err := db.CountQuestions()
		if err != nil {
			return fmt.Errorf("failed to count questions: %w", err)
		}
		log.WithField("count", count).Info("Question bank seeded")

		byCategory, err := db.CountByCategory()
		if err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		for category, n := range byCategory {
			log.WithFields(logrus.Fields{"category": category, "count": n}).Debug("Category seeded")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d questions into %s\n", count, cfg.DatabasePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
