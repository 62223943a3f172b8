package history

import (
	"context"

	ghfetch "github.com/mhosseinMethod/last-commit-slack-bot/internal/github"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/input"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/review"
)

// prForCommit finds the pull request that introduced a commit and extracts
// the automated reviewer's overview from its reviews. A commit with no
// associated pull request returns nil, and so does any lookup failure: a
// pull-request lookup problem must never fail the surrounding commit
// enrichment.
func (s *Service) prForCommit(ctx context.Context, ref input.RepoRef, sha string) *PullRequestInfo {
	logger := loggerFrom(ctx)

	pulls, err := ghfetch.PullRequestsForCommit(ctx, s.client, ref, sha)
	if err != nil {
		logger.Debug("PR lookup failed, skipping enrichment", "sha", sha, "error", err)
		return nil
	}
	if len(pulls) == 0 {
		return nil
	}

	// First result wins; upstream API order breaks ties.
	number := pulls[0].GetNumber()

	pr, err := ghfetch.GetPullRequest(ctx, s.client, ref, number)
	if err != nil {
		logger.Debug("PR detail fetch failed, skipping enrichment", "number", number, "error", err)
		return nil
	}

	info := &PullRequestInfo{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
		State:  pr.GetState(),
		Body:   pr.GetBody(),
	}

	if mergedAt := pr.GetMergedAt(); !mergedAt.Time.IsZero() {
		t := mergedAt.Time
		info.MergedAt = &t
		info.State = "merged"
	}

	// Review failures degrade to a PR without an overview rather than
	// discarding the PR itself.
	reviews, err := ghfetch.ListPullRequestReviews(ctx, s.client, ref, number)
	if err != nil {
		logger.Debug("Review fetch failed, PR kept without overview", "number", number, "error", err)
		return info
	}

	entries := make([]review.Review, 0, len(reviews))
	for _, r := range reviews {
		entries = append(entries, review.Review{
			Author:     r.GetUser().GetLogin(),
			AuthorType: r.GetUser().GetType(),
			Body:       r.GetBody(),
		})
	}

	if bot, ok := review.FindBotReview(entries); ok {
		info.CopilotOverview = review.ExtractOverview(bot.Body)
		logger.Debug("Bot review overview extracted", "number", number, "author", bot.Author)
	}

	return info
}
