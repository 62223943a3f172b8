package history

import (
	"context"

	"github.com/mhosseinMethod/last-commit-slack-bot/internal/ai"
)

// summarizePR requests a per-item summary of one pull request's reviewer
// overview. Absent overviews are skipped without calling the summarizer, and
// summarizer failures degrade to no summary; summarization is enrichment,
// never the primary deliverable.
func (s *Service) summarizePR(ctx context.Context, prTitle, overview string) string {
	if overview == "" {
		return ""
	}

	summary, err := s.summarizer.SummarizePR(ctx, prTitle, overview)
	if err != nil {
		loggerFrom(ctx).Debug("PR summarization failed, continuing without summary", "title", prTitle, "error", err)
		return ""
	}

	return summary
}

// summarizeActivity requests an overall summary across the enriched commit
// batch. Empty batches are skipped and failures degrade to no summary.
func (s *Service) summarizeActivity(ctx context.Context, commits []Commit) string {
	if len(commits) == 0 {
		return ""
	}

	items := make([]ai.ActivityItem, 0, len(commits))
	for _, c := range commits {
		item := ai.ActivityItem{Message: c.Message}
		if c.PR != nil {
			item.PRNumber = c.PR.Number
			item.PRTitle = c.PR.Title
		}
		items = append(items, item)
	}

	summary, err := s.summarizer.SummarizeActivity(ctx, items)
	if err != nil {
		loggerFrom(ctx).Debug("Activity summarization failed, continuing without summary", "commits", len(commits), "error", err)
		return ""
	}

	return summary
}
