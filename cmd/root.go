package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "last-commit-slack-bot",
	Short: "Digest recent repository activity for Slack",
	Long: `last-commit-slack-bot fetches the most recent commits of a GitHub repository,
correlates each commit with the pull request that introduced it, summarizes
the automated reviewer's overview with an AI model, and renders the result
as a bounded-length Slack message.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior - show help
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}
