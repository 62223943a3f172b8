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
	historyBranch  string
	historyCount   int
	historyVerbose bool
	historyQuiet   bool
)

var historyCmd = &cobra.Command{
	Use:   "history <repository>",
	Short: "Digest a repository's recent commit activity",
	Long: `History fetches the last N commits of a branch, enriches each with its
originating pull request and an AI summary of the automated reviewer's
overview, and prints a Slack-ready message.

The repository may be given as "owner/repo", a GitHub URL, or a bare name
when GITHUB_DEFAULT_OWNER is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyBranch, "branch", history.DefaultBranch, "Branch to fetch commits from")
	historyCmd.Flags().IntVar(&historyCount, "count", history.DefaultCount, "Number of commits to fetch")
	historyCmd.Flags().BoolVar(&historyVerbose, "verbose", false, "Enable verbose progress output")
	historyCmd.Flags().BoolVar(&historyQuiet, "quiet", false, "Suppress all progress output")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.FromEnv(historyVerbose, historyQuiet)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg)
	ctx = context.WithValue(ctx, "logger", logger)

	logger.Debug("Initializing GitHub client")
	client := github.New(cfg.GitHubToken)
	summarizer := initSummarizer(cfg, logger)

	svc := history.NewService(client, summarizer, cfg.DefaultOwner)

	logger.Info("Fetching repository history...", "repository", args[0], "branch", historyBranch, "count", historyCount)
	result := svc.FetchRepositoryHistory(ctx, args[0], historyBranch, historyCount)

	fmt.Println(format.RenderRepoHistory(&result))
	return nil
}
