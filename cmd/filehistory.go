package cmd

import (
	"context"
	"fmt"

	"github.com/mhosseinMethod/last-commit-slack-bot/internal/config"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/format"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/github"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/history"
	"github.com/spf13/cobra"
)

var (
	fileHistoryBranch  string
	fileHistoryVerbose bool
	fileHistoryQuiet   bool
)

var fileHistoryCmd = &cobra.Command{
	Use:   "file-history <repository> <path>",
	Short: "Digest recent commit activity for a single file",
	Long: `File-history fetches the last commits touching one file path on a branch
and prints a Slack-ready message. File digests carry no pull request
enrichment and no AI summaries.`,
	Args: cobra.ExactArgs(2),
	RunE: runFileHistory,
}

func init() {
	rootCmd.AddCommand(fileHistoryCmd)

	fileHistoryCmd.Flags().StringVar(&fileHistoryBranch, "branch", history.DefaultBranch, "Branch to fetch commits from")
	fileHistoryCmd.Flags().BoolVar(&fileHistoryVerbose, "verbose", false, "Enable verbose progress output")
	fileHistoryCmd.Flags().BoolVar(&fileHistoryQuiet, "quiet", false, "Suppress all progress output")
}

func runFileHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.FromEnv(fileHistoryVerbose, fileHistoryQuiet)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg)
	ctx = context.WithValue(ctx, "logger", logger)

	client := github.New(cfg.GitHubToken)
	svc := history.NewService(client, initSummarizer(cfg, logger), cfg.DefaultOwner)

	logger.Info("Fetching file history...", "repository", args[0], "path", args[1], "branch", fileHistoryBranch)
	result := svc.FetchFileHistory(ctx, args[0], args[1], fileHistoryBranch)

	fmt.Println(format.RenderFileHistory(&result))
	return nil
}
