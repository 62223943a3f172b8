package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v66/github"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/input"
)

// ListRecentCommits retrieves the first count commits of a branch,
// newest first
func ListRecentCommits(ctx context.Context, client *github.Client, ref input.RepoRef, branch string, count int) ([]*github.RepositoryCommit, error) {
	logger := loggerFrom(ctx)
	logger.Debug("Fetching commits", "repo", ref.String(), "branch", branch, "count", count)

	opts := &github.CommitsListOptions{
		SHA: branch,
		ListOptions: github.ListOptions{
			PerPage: count,
		},
	}

	commits, _, err := client.Repositories.ListCommits(ctx, ref.Owner, ref.Repo, opts)
	if err != nil {
		logger.Debug("GitHub API commit list failed", "repo", ref.String(), "error", err)
		return nil, fmt.Errorf("failed to list commits for %s: %w", ref.String(), err)
	}

	logger.Debug("Commits fetched", "repo", ref.String(), "count", len(commits))
	return commits, nil
}

// ListFileCommits retrieves the commits of a branch that touch a single file
// path, newest first
func ListFileCommits(ctx context.Context, client *github.Client, ref input.RepoRef, path, branch string, count int) ([]*github.RepositoryCommit, error) {
	logger := loggerFrom(ctx)
	logger.Debug("Fetching file commits", "repo", ref.String(), "path", path, "branch", branch)

	opts := &github.CommitsListOptions{
		SHA:  branch,
		Path: path,
		ListOptions: github.ListOptions{
			PerPage: count,
		},
	}

	commits, _, err := client.Repositories.ListCommits(ctx, ref.Owner, ref.Repo, opts)
	if err != nil {
		logger.Debug("GitHub API file commit list failed", "repo", ref.String(), "path", path, "error", err)
		return nil, fmt.Errorf("failed to list commits for %s in %s: %w", path, ref.String(), err)
	}

	logger.Debug("File commits fetched", "repo", ref.String(), "path", path, "count", len(commits))
	return commits, nil
}

// loggerFrom pulls the request logger out of the context, falling back to
// the default logger
func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value("logger").(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
