package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mhosseinMethod/last-commit-slack-bot/internal/history"
)

const (
	// RepoMaxChars is the hard ceiling for the repo digest message, with a
	// safety margin under the chat platform's true limit
	RepoMaxChars = 4000

	// FileMaxChars is the independent, smaller ceiling for the file digest
	FileMaxChars = 3000

	// MaxCommits caps how many commits are rendered per message
	MaxCommits = 10

	// earlyStopMargin is how close to the budget the block loop may run
	// before it stops appending commits
	earlyStopMargin = 200

	noDataMessage    = "*AI Summary:* Unknown\n\n_No data provided._"
	truncationNotice = "… (output truncated due to length)"
	truncatedMarker  = "...(truncated)"
)

// RenderRepoHistory turns a repository history result into a single chat
// message. Output never exceeds RepoMaxChars: the block loop stops early near
// the budget and a final hard-truncate pass clamps whatever remains. The two
// checks are independent safety nets.
func RenderRepoHistory(res *history.Result) string {
	if res == nil {
		return noDataMessage
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return ":warning: Error: " + msg
	}

	commits := res.Commits
	capped := len(commits) > MaxCommits
	if capped {
		commits = commits[:MaxCommits]
	}

	var lines []string

	if res.Summary != "" {
		lines = append(lines, "*AI Summary:* "+res.Summary, "")
	} else {
		lines = append(lines, "*AI Summary:* Unknown", "")
	}

	lines = append(lines, ":clipboard: Recent Commits:")

	if len(commits) == 0 {
		lines = append(lines, "_No commits found._")
	}

	stoppedEarly := false
	for _, c := range commits {
		lines = append(lines, commitBlock(c)...)

		// Safety: stop early once the running length nears the budget
		if renderedLen(lines) > RepoMaxChars-earlyStopMargin {
			lines = append(lines, truncationNotice)
			stoppedEarly = true
			break
		}
	}

	// Dropped commits get an explicit marker even when the budget was not hit
	if capped && !stoppedEarly {
		lines = append(lines, truncationNotice)
	}

	result := strings.TrimSpace(strings.Join(lines, "\n"))
	return hardTruncate(result, RepoMaxChars)
}

// RenderFileHistory turns a file history result into a single chat message
// under FileMaxChars, enforced with a single hard-truncate pass.
func RenderFileHistory(res *history.FileResult) string {
	if res == nil {
		return noDataMessage
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return ":warning: Error: " + msg
	}

	commits := res.Commits
	if len(commits) > MaxCommits {
		commits = commits[:MaxCommits]
	}

	header := fmt.Sprintf(":page_facing_up: File History: `%s`", res.File)
	if res.Repo != "" {
		header += fmt.Sprintf(" (%s)", res.Repo)
	}
	lines := []string{header, ""}

	if len(commits) == 0 {
		lines = append(lines, "_No commits found for this file._")
	}

	for _, c := range commits {
		lines = append(lines, commitBlock(c)...)
	}

	result := strings.TrimSpace(strings.Join(lines, "\n"))
	return hardTruncate(result, FileMaxChars)
}

// commitBlock renders one commit as the fixed three-line block plus a blank
// spacer: linked short hash + message, author + relative time, AI summary.
func commitBlock(c history.Commit) []string {
	hash := c.Hash
	if hash == "" {
		if len(c.FullHash) >= 7 {
			hash = c.FullHash[:7]
		} else {
			hash = "unknown"
		}
	}

	message := strings.TrimSpace(c.Message)
	if message == "" {
		message = "(no message)"
	}

	// Line 1: clickable hash then " - message"
	first := fmt.Sprintf("**[%s](%s)** - %s", hash, c.URL, message)

	// Line 2: author • relativeTime
	meta := ":bust_in_silhouette: " + c.Author
	if c.RelativeTime != "" {
		meta += " • *" + c.RelativeTime + "*"
	}

	// Line 3: AI summary for the commit
	summary := "(no AI summary)"
	if c.PR != nil {
		if s := strings.TrimSpace(c.PR.AISummary); s != "" {
			summary = ":bulb: " + s
		}
	}

	return []string{first, meta, summary, ""}
}

// renderedLen is the length the lines would render to, counting one newline
// per line
func renderedLen(lines []string) int {
	total := 0
	for _, l := range lines {
		total += len(l) + 1
	}
	return total
}

// hardTruncate clamps s to at most max bytes, ending in the truncation
// marker. Cuts land on rune boundaries so the output stays valid UTF-8.
func hardTruncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	marker := "\n\n" + truncatedMarker
	cut := max - len(marker)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return strings.TrimRight(s[:cut], " \t\n") + marker
}
