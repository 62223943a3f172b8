package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	githubapi "github.com/google/go-github/v66/github"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/ai"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/derive"
	ghfetch "github.com/mhosseinMethod/last-commit-slack-bot/internal/github"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/input"
)

const (
	// DefaultCount is the commit window size used when the caller does not
	// specify one
	DefaultCount = 5

	// DefaultBranch is the branch used when the caller does not specify one
	DefaultBranch = "master"

	shortHashLen = 7
)

// Fixed user-facing failure messages for the commit-list retrieval
const (
	msgRepoNotFound = "Repository not found"
	msgForbidden    = "Rate limit exceeded or access forbidden"
	msgBadToken     = "Invalid GitHub token or authentication failed"
)

// Service fetches commit history and enriches it with pull request data and
// AI summaries. Client handles are injected once per process, not per call.
type Service struct {
	client       *githubapi.Client
	summarizer   ai.Summarizer
	defaultOwner string
	now          func() time.Time
}

// NewService creates a history service around an authenticated GitHub client
// and a summarizer. defaultOwner, when non-empty, is prefixed onto bare
// repository names.
func NewService(client *githubapi.Client, summarizer ai.Summarizer, defaultOwner string) *Service {
	return &Service{
		client:       client,
		summarizer:   summarizer,
		defaultOwner: defaultOwner,
		now:          time.Now,
	}
}

// FetchRepositoryHistory retrieves the last count commits of branch and
// enriches each with its originating pull request and an AI summary of the
// reviewer overview. Enrichment failures never escalate; only the initial
// commit-list retrieval can fail the result.
func (s *Service) FetchRepositoryHistory(ctx context.Context, repository, branch string, count int) Result {
	logger := loggerFrom(ctx)

	ref, err := input.ParseRepoRef(repository, s.defaultOwner)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}

	if branch == "" {
		branch = DefaultBranch
	}
	if count <= 0 {
		count = DefaultCount
	}

	raw, err := ghfetch.ListRecentCommits(ctx, s.client, ref, branch, count)
	if err != nil {
		return Result{Success: false, Message: failureMessage(err)}
	}

	// Per-commit enrichment fans out concurrently; each task isolates its own
	// errors so one slow or failing commit does not block or fail siblings.
	commits := make([]Commit, len(raw))
	var wg sync.WaitGroup
	for i, rc := range raw {
		wg.Add(1)
		go func(i int, rc *githubapi.RepositoryCommit) {
			defer wg.Done()
			commits[i] = s.enrichCommit(ctx, ref, rc)
		}(i, rc)
	}
	wg.Wait()

	logger.Debug("Commit enrichment completed", "repo", ref.String(), "commits", len(commits))

	// The batch summary reads the combined enrichment output, so it runs
	// strictly after the fan-in.
	summary := s.summarizeActivity(ctx, commits)

	return Result{Success: true, Commits: commits, Summary: summary}
}

// FetchFileHistory retrieves the last commits touching one file path on a
// branch. File history carries no pull request enrichment and no AI summary.
func (s *Service) FetchFileHistory(ctx context.Context, repository, path, branch string) FileResult {
	if strings.TrimSpace(path) == "" {
		return FileResult{
			Success: false,
			File:    path,
			Message: "Invalid file path. Please provide a valid file path.",
		}
	}

	ref, err := input.ParseRepoRef(repository, s.defaultOwner)
	if err != nil {
		return FileResult{Success: false, File: path, Message: err.Error()}
	}

	if branch == "" {
		branch = DefaultBranch
	}

	raw, err := ghfetch.ListFileCommits(ctx, s.client, ref, path, branch, DefaultCount)
	if err != nil {
		return FileResult{Success: false, File: path, Repo: ref.String(), Message: fileFailureMessage(err, ref, path)}
	}

	commits := make([]Commit, 0, len(raw))
	for _, rc := range raw {
		commits = append(commits, s.baseCommit(rc))
	}

	return FileResult{Success: true, File: path, Repo: ref.String(), Commits: commits}
}

// enrichCommit builds a Commit and attaches pull request data and a per-item
// AI summary when available
func (s *Service) enrichCommit(ctx context.Context, ref input.RepoRef, rc *githubapi.RepositoryCommit) Commit {
	commit := s.baseCommit(rc)

	pr := s.prForCommit(ctx, ref, commit.FullHash)
	if pr != nil {
		pr.AISummary = s.summarizePR(ctx, pr.Title, pr.CopilotOverview)
		commit.PR = pr
	}

	return commit
}

// baseCommit maps an API commit onto the local model
func (s *Service) baseCommit(rc *githubapi.RepositoryCommit) Commit {
	sha := rc.GetSHA()
	short := sha
	if len(short) > shortHashLen {
		short = short[:shortHashLen]
	}

	date := rc.GetCommit().GetAuthor().GetDate().Time

	return Commit{
		Hash:         short,
		FullHash:     sha,
		Message:      firstLine(rc.GetCommit().GetMessage()),
		Author:       rc.GetCommit().GetAuthor().GetName(),
		Email:        rc.GetCommit().GetAuthor().GetEmail(),
		Date:         date,
		RelativeTime: derive.RelativeTime(date, s.now()),
		URL:          rc.GetHTMLURL(),
	}
}

// failureMessage maps a commit-list retrieval error to the fixed user-facing
// message for its condition
func failureMessage(err error) string {
	var rateErr *githubapi.RateLimitError
	var abuseErr *githubapi.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return msgForbidden
	}

	var ghErr *githubapi.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case 404:
			return msgRepoNotFound
		case 403, 429:
			return msgForbidden
		case 401:
			return msgBadToken
		}
	}

	return fmt.Sprintf("GitHub API error: %v", err)
}

// fileFailureMessage maps a file commit-list retrieval error to a message
// naming the repository and path
func fileFailureMessage(err error, ref input.RepoRef, path string) string {
	var rateErr *githubapi.RateLimitError
	var abuseErr *githubapi.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return "GitHub API rate limit exceeded or insufficient permissions. Please check your token."
	}

	var ghErr *githubapi.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case 404:
			return fmt.Sprintf("Repository %q or file %q not found. Please check the repository name and file path.", ref.String(), path)
		case 403, 429:
			return "GitHub API rate limit exceeded or insufficient permissions. Please check your token."
		case 401:
			return "Authentication failed. Please check your GitHub token."
		}
	}

	return fmt.Sprintf("Failed to fetch file history: %v", err)
}

// firstLine returns the first line of a commit message
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return message[:idx]
	}
	return message
}

// loggerFrom pulls the request logger out of the context, falling back to
// the default logger
func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value("logger").(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
