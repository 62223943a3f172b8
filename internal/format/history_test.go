package format

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mhosseinMethod/last-commit-slack-bot/internal/history"
)

func sampleCommit(i int) history.Commit {
	return history.Commit{
		Hash:         fmt.Sprintf("abc%04d", i),
		FullHash:     fmt.Sprintf("abc%04d0000000000000000000000000000000", i),
		Message:      fmt.Sprintf("Commit number %d", i),
		Author:       "Jane Doe",
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		RelativeTime: "2 days ago",
		URL:          fmt.Sprintf("https://github.com/owner/repo/commit/abc%04d", i),
	}
}

func TestRenderRepoHistory_NoData(t *testing.T) {
	got := RenderRepoHistory(nil)
	if got != "*AI Summary:* Unknown\n\n_No data provided._" {
		t.Errorf("RenderRepoHistory(nil) = %q", got)
	}
}

func TestRenderRepoHistory_Failure(t *testing.T) {
	// Commits on a failed result are irrelevant and must never be rendered
	res := &history.Result{
		Success: false,
		Message: "Repository not found",
		Commits: []history.Commit{sampleCommit(1)},
	}

	got := RenderRepoHistory(res)
	if got != ":warning: Error: Repository not found" {
		t.Errorf("RenderRepoHistory() = %q", got)
	}
	if strings.Contains(got, "Commit number") {
		t.Error("failure rendering inspected commits")
	}
}

func TestRenderRepoHistory_FailureWithoutMessage(t *testing.T) {
	got := RenderRepoHistory(&history.Result{Success: false})
	if got != ":warning: Error: Unknown error" {
		t.Errorf("RenderRepoHistory() = %q", got)
	}
}

func TestRenderRepoHistory_EmptyHistory(t *testing.T) {
	got := RenderRepoHistory(&history.Result{Success: true})
	if !strings.Contains(got, "_No commits found._") {
		t.Errorf("empty history output missing no-commits line: %q", got)
	}
	if strings.Contains(got, ":warning:") {
		t.Errorf("empty history rendered as an error: %q", got)
	}
}

func TestRenderRepoHistory_CommitBlocks(t *testing.T) {
	pr := &history.PullRequestInfo{
		Number:    42,
		Title:     "Fix parser",
		AISummary: "Rewrote the tokenizer to fix parsing.",
	}
	commitWithPR := sampleCommit(1)
	commitWithPR.PR = pr

	res := &history.Result{
		Success: true,
		Commits: []history.Commit{commitWithPR, sampleCommit(2)},
		Summary: "Mostly parser work this week.",
	}

	got := RenderRepoHistory(res)

	if !strings.HasPrefix(got, "*AI Summary:* Mostly parser work this week.") {
		t.Errorf("missing overall summary header: %q", got)
	}
	if !strings.Contains(got, ":clipboard: Recent Commits:") {
		t.Errorf("missing commits header: %q", got)
	}
	if !strings.Contains(got, "**[abc0001](https://github.com/owner/repo/commit/abc0001)** - Commit number 1") {
		t.Errorf("missing linked hash line: %q", got)
	}
	if !strings.Contains(got, ":bust_in_silhouette: Jane Doe • *2 days ago*") {
		t.Errorf("missing author line: %q", got)
	}
	if !strings.Contains(got, ":bulb: Rewrote the tokenizer to fix parsing.") {
		t.Errorf("missing AI summary line: %q", got)
	}
	if !strings.Contains(got, "(no AI summary)") {
		t.Errorf("missing placeholder for commit without summary: %q", got)
	}
}

func TestRenderRepoHistory_NoSummaryHeader(t *testing.T) {
	res := &history.Result{Success: true, Commits: []history.Commit{sampleCommit(1)}}
	got := RenderRepoHistory(res)
	if !strings.HasPrefix(got, "*AI Summary:* Unknown") {
		t.Errorf("missing fallback summary header: %q", got)
	}
}

func TestRenderRepoHistory_CapsCommits(t *testing.T) {
	var commits []history.Commit
	for i := 0; i < 15; i++ {
		commits = append(commits, sampleCommit(i))
	}

	got := RenderRepoHistory(&history.Result{Success: true, Commits: commits})

	blocks := strings.Count(got, ":bust_in_silhouette:")
	if blocks != MaxCommits {
		t.Errorf("rendered %d commit blocks, want %d", blocks, MaxCommits)
	}
	if !strings.Contains(got, truncationNotice) {
		t.Errorf("capped output missing truncation notice: %q", got)
	}
}

func TestRenderRepoHistory_HardTruncate(t *testing.T) {
	long := strings.Repeat("x", 600)
	var commits []history.Commit
	for i := 0; i < 10; i++ {
		c := sampleCommit(i)
		c.Message = long
		commits = append(commits, c)
	}

	got := RenderRepoHistory(&history.Result{Success: true, Commits: commits})

	if len(got) > RepoMaxChars {
		t.Errorf("output length %d exceeds budget %d", len(got), RepoMaxChars)
	}
	if !strings.HasSuffix(got, truncatedMarker) {
		t.Errorf("truncated output does not end with marker: %q", got[len(got)-40:])
	}
}

func TestRenderRepoHistory_Idempotent(t *testing.T) {
	res := &history.Result{
		Success: true,
		Commits: []history.Commit{sampleCommit(1), sampleCommit(2)},
		Summary: "Steady refactoring.",
	}

	first := RenderRepoHistory(res)
	second := RenderRepoHistory(res)
	if first != second {
		t.Error("rendering the same result twice produced different output")
	}
}

func TestRenderFileHistory(t *testing.T) {
	res := &history.FileResult{
		Success: true,
		File:    "src/parser.go",
		Repo:    "owner/repo",
		Commits: []history.Commit{sampleCommit(1)},
	}

	got := RenderFileHistory(res)

	if !strings.HasPrefix(got, ":page_facing_up: File History: `src/parser.go` (owner/repo)") {
		t.Errorf("missing file header: %q", got)
	}
	if !strings.Contains(got, "**[abc0001]") {
		t.Errorf("missing commit block: %q", got)
	}
}

func TestRenderFileHistory_Failure(t *testing.T) {
	res := &history.FileResult{Success: false, File: "a.go", Message: "Authentication failed. Please check your GitHub token."}
	got := RenderFileHistory(res)
	if got != ":warning: Error: Authentication failed. Please check your GitHub token." {
		t.Errorf("RenderFileHistory() = %q", got)
	}
}

func TestRenderFileHistory_Empty(t *testing.T) {
	res := &history.FileResult{Success: true, File: "a.go", Repo: "owner/repo"}
	got := RenderFileHistory(res)
	if !strings.Contains(got, "_No commits found for this file._") {
		t.Errorf("missing no-commits line: %q", got)
	}
}

func TestRenderFileHistory_HardTruncate(t *testing.T) {
	long := strings.Repeat("y", 700)
	var commits []history.Commit
	for i := 0; i < 8; i++ {
		c := sampleCommit(i)
		c.Message = long
		commits = append(commits, c)
	}

	got := RenderFileHistory(&history.FileResult{Success: true, File: "a.go", Commits: commits})

	if len(got) > FileMaxChars {
		t.Errorf("output length %d exceeds budget %d", len(got), FileMaxChars)
	}
	if !strings.HasSuffix(got, truncatedMarker) {
		t.Errorf("truncated output does not end with marker")
	}
}

func TestHardTruncate_RuneBoundary(t *testing.T) {
	s := strings.Repeat("é", 3000)
	got := hardTruncate(s, 100)
	if len(got) > 100 {
		t.Errorf("hardTruncate length = %d, want <= 100", len(got))
	}
	if !strings.HasSuffix(got, truncatedMarker) {
		t.Error("missing marker")
	}
	if !utf8.ValidString(got) {
		t.Error("truncated output is not valid UTF-8")
	}
}
