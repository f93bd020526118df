package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/korjavin/questiongen/config"
	"github.com/korjavin/questiongen/fixtures"
)

var verifyCmd = &cobra.Command{
	Use:     "verify",
	Short:   "Check an existing fixture file",
	Long:    `Parses FIXTURE_PATH (default large_questions.csv) and checks it row by row against what the generator produces.`,
	Args:    cobra.NoArgs,
	PreRunE: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := config.Log().WithField("path", cfg.FixturePath)

		questions, err := fixtures.ReadFile(cfg.FixturePath)
		if err != nil {
			return fmt.Errorf("failed to read fixture: %w", err)
		}
		log.Debugf("Read %d questions", len(questions))

		if err := fixtures.Verify(questions); err != nil {
			return fmt.Errorf("%s: %w", cfg.FixturePath, err)
		}

		log.Info("Fixture verified")
		fmt.Fprintf(cmd.OutOrStdout(), "%s OK (%d questions)\n", cfg.FixturePath, len(questions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func initLogger(cmd *cobra.Command, args []string) error {
	return config.InitLogger()
}
