package input

import (
	"fmt"
	"regexp"
	"strings"
)

// RepoRef represents a GitHub repository reference
type RepoRef struct {
	Owner string
	Repo  string
}

// String returns a string representation of the RepoRef
func (ref RepoRef) String() string {
	return ref.Owner + "/" + ref.Repo
}

// URL returns the web-viewable URL for the repository
func (ref RepoRef) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s", ref.Owner, ref.Repo)
}

// githubRepoURLRegex matches GitHub repository URLs
var githubRepoURLRegex = regexp.MustCompile(`^https://github\.com/([^/\s]+)/([^/\s]+?)(?:\.git)?/?$`)

// ParseRepoRef parses a repository identifier into a RepoRef. Accepted forms:
// "owner/repo", a full https://github.com/owner/repo URL, or a bare "repo"
// name when defaultOwner is non-empty. Anything else is rejected before any
// API call is made.
func ParseRepoRef(raw, defaultOwner string) (RepoRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RepoRef{}, fmt.Errorf("invalid repository name. Expected format: \"owner/repo\"")
	}

	if matches := githubRepoURLRegex.FindStringSubmatch(raw); matches != nil {
		return RepoRef{Owner: matches[1], Repo: matches[2]}, nil
	}

	parts := strings.Split(raw, "/")
	switch len(parts) {
	case 1:
		if defaultOwner == "" {
			return RepoRef{}, fmt.Errorf("invalid repository name %q. Expected format: \"owner/repo\"", raw)
		}
		return RepoRef{Owner: defaultOwner, Repo: parts[0]}, nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return RepoRef{}, fmt.Errorf("invalid repository name %q. Expected format: \"owner/repo\"", raw)
		}
		return RepoRef{Owner: parts[0], Repo: parts[1]}, nil
	default:
		return RepoRef{}, fmt.Errorf("invalid repository name %q. Expected format: \"owner/repo\"", raw)
	}
}
