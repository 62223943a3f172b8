package review

import (
	"strings"
)

// OverviewHeading is the markdown heading the automated reviewer uses for its
// structured summary section.
const OverviewHeading = "## Pull Request Overview"

// overviewMarker is the looser marker used to recognize a bot review by its
// body text alone.
const overviewMarker = "Pull Request Overview"

// Review represents a single pull request review entry
type Review struct {
	Author     string // Reviewer login
	AuthorType string // Account type reported by the API (e.g. "Bot")
	Body       string // Raw review body text
}

// FindBotReview scans reviews for the first one authored by an automated
// reviewer. A review qualifies if the author login is (or contains) "copilot",
// the account type is "Bot", or the body carries the overview marker.
// Returns (Review{}, false) if no review qualifies.
func FindBotReview(reviews []Review) (Review, bool) {
	for _, r := range reviews {
		login := strings.ToLower(r.Author)
		if login == "copilot" ||
			strings.Contains(login, "copilot") ||
			r.AuthorType == "Bot" ||
			strings.Contains(r.Body, overviewMarker) {
			return r, true
		}
	}
	return Review{}, false
}

// ExtractOverview pulls the overview section out of a bot review body.
// If the body contains the overview heading, the section runs from after the
// heading to the next "##" heading or end of text, trimmed. Bodies without
// the heading are used whole.
func ExtractOverview(body string) string {
	idx := strings.Index(body, OverviewHeading)
	if idx < 0 {
		return strings.TrimSpace(body)
	}

	section := body[idx+len(OverviewHeading):]
	if next := strings.Index(section, "\n##"); next >= 0 {
		section = section[:next]
	}

	return strings.TrimSpace(section)
}
