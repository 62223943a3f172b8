package history

import "time"

// Commit represents one fetched commit, enriched with its originating pull
// request when one can be found. Immutable once constructed.
type Commit struct {
	Hash         string           // Short 7-character hash
	FullHash     string           // Full commit SHA
	Message      string           // First line of the commit message
	Author       string           // Commit author name
	Email        string           // Commit author email
	Date         time.Time        // Authored timestamp
	RelativeTime string           // Coarse human phrase derived from Date
	URL          string           // Web-viewable commit URL
	PR           *PullRequestInfo // Associated pull request, nil if none
}

// PullRequestInfo carries the pull request a commit belongs to. It is owned
// exclusively by its parent Commit and never shared across commits, even when
// two commits map to the same pull request.
type PullRequestInfo struct {
	Number          int        // Pull request number
	Title           string     // Pull request title
	URL             string     // Web-viewable pull request URL
	State           string     // Lifecycle state: "open", "closed" or "merged"
	MergedAt        *time.Time // Merge timestamp, nil if not merged
	Body            string     // Raw description body
	CopilotOverview string     // Extracted reviewer-overview text, empty if absent
	AISummary       string     // AI-generated summary of the overview, empty if absent
}

// Result is the outcome of a repository history fetch. Success false implies
// Commits is empty and Message is non-empty; success true implies Message is
// empty (zero commits is a valid "no history" outcome, not a failure).
type Result struct {
	Success bool     // Whether the fetch succeeded
	Commits []Commit // Fetched commits, newest first
	Summary string   // Overall AI activity summary, empty if unavailable
	Message string   // Failure message when Success is false
}

// FileResult is the outcome of a file-scoped history fetch.
type FileResult struct {
	Success bool     // Whether the fetch succeeded
	File    string   // Path of the file the history was fetched for
	Repo    string   // Repository label ("owner/repo"), empty if unknown
	Commits []Commit // Fetched commits, newest first
	Message string   // Failure message when Success is false
}
