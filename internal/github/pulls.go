package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/input"
)

// PullRequestsForCommit lists the pull requests associated with a commit SHA,
// in upstream API order
func PullRequestsForCommit(ctx context.Context, client *github.Client, ref input.RepoRef, sha string) ([]*github.PullRequest, error) {
	logger := loggerFrom(ctx)
	logger.Debug("Fetching pull requests for commit", "repo", ref.String(), "sha", sha)

	pulls, _, err := client.PullRequests.ListPullRequestsWithCommit(ctx, ref.Owner, ref.Repo, sha, &github.ListOptions{})
	if err != nil {
		logger.Debug("GitHub API PR lookup failed", "repo", ref.String(), "sha", sha, "error", err)
		return nil, fmt.Errorf("failed to list pull requests for commit %s: %w", sha, err)
	}

	logger.Debug("Pull requests fetched for commit", "repo", ref.String(), "sha", sha, "count", len(pulls))
	return pulls, nil
}

// GetPullRequest fetches the full details of a pull request by number
func GetPullRequest(ctx context.Context, client *github.Client, ref input.RepoRef, number int) (*github.PullRequest, error) {
	logger := loggerFrom(ctx)
	logger.Debug("Fetching pull request details", "repo", ref.String(), "number", number)

	pr, _, err := client.PullRequests.Get(ctx, ref.Owner, ref.Repo, number)
	if err != nil {
		logger.Debug("GitHub API PR fetch failed", "repo", ref.String(), "number", number, "error", err)
		return nil, fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
	}

	return pr, nil
}

// ListPullRequestReviews lists the review entries for a pull request
func ListPullRequestReviews(ctx context.Context, client *github.Client, ref input.RepoRef, number int) ([]*github.PullRequestReview, error) {
	logger := loggerFrom(ctx)
	logger.Debug("Fetching pull request reviews", "repo", ref.String(), "number", number)

	reviews, _, err := client.PullRequests.ListReviews(ctx, ref.Owner, ref.Repo, number, &github.ListOptions{})
	if err != nil {
		logger.Debug("GitHub API review list failed", "repo", ref.String(), "number", number, "error", err)
		return nil, fmt.Errorf("failed to list reviews for pull request #%d: %w", number, err)
	}

	logger.Debug("Pull request reviews fetched", "repo", ref.String(), "number", number, "count", len(reviews))
	return reviews, nil
}
