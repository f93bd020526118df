package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/korjavin/questiongen/config"
	"github.com/korjavin/questiongen/fixtures"
)

var rootCmd = &cobra.Command{
	Use:   "questiongen",
	Short: "Generate the large_questions.csv test fixture",
	Long: `questiongen writes large_questions.csv to the current directory:
a header row followed by 1000 synthetic trivia questions for the e2e suite.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Log().WithField("path", fixtures.DefaultPath).Debug("Writing fixture")

		if err := fixtures.WriteFile(fixtures.DefaultPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d questions\n", fixtures.DefaultPath, fixtures.Count)
		return nil
	},
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		config.Log().WithError(err).Error("questiongen failed")
		os.Exit(1)
	}
}
