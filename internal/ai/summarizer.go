package ai

import (
	"context"
	"fmt"
	"strings"
)

// ActivityItem represents one enriched commit in a batch summarization request
type ActivityItem struct {
	Message  string // First line of the commit message
	PRNumber int    // Associated pull request number (0 if none)
	PRTitle  string // Associated pull request title
}

// Summarizer provides AI-powered summarization of pull request overviews and
// repository activity
type Summarizer interface {
	// SummarizePR generates a 1-2 sentence summary of a single pull request's
	// reviewer overview text
	SummarizePR(ctx context.Context, prTitle, overview string) (string, error)

	// SummarizeActivity generates a 2-3 sentence summary of overall themes
	// across a batch of recent commits
	SummarizeActivity(ctx context.Context, items []ActivityItem) (string, error)
}

// DigestLines renders the numbered per-commit digest used as the batch
// summarization payload: "{i}. {message} (PR #{n}: {title})", with the PR
// suffix omitted for commits without one.
func DigestLines(items []ActivityItem) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, item.Message)
		if item.PRNumber > 0 {
			line += fmt.Sprintf(" (PR #%d: %s)", item.PRNumber, item.PRTitle)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// NoopSummarizer provides a fallback implementation used when AI
// summarization is disabled
type NoopSummarizer struct{}

// NewNoopSummarizer creates a new no-op summarizer
func NewNoopSummarizer() *NoopSummarizer {
	return &NoopSummarizer{}
}

// SummarizePR returns the trimmed raw overview text
func (n *NoopSummarizer) SummarizePR(_ context.Context, _, overview string) (string, error) {
	return strings.TrimSpace(overview), nil
}

// SummarizeActivity returns an empty summary; there is no model to
// synthesize themes from
func (n *NoopSummarizer) SummarizeActivity(_ context.Context, _ []ActivityItem) (string, error) {
	return "", nil
}
