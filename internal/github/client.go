package github

import (
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const (
	userAgent         = "last-commit-slack-bot/1.0"
	requestTimeoutSec = 30 // 30 second timeout per request
)

// New creates a new GitHub client with OAuth2 authentication.
// Upstream failures are mapped to user-facing messages by the caller and are
// never retried, so the transport stays plain.
func New(token string) *github.Client {
	// Create OAuth2 token source
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})

	// Create HTTP client with OAuth2 transport and timeout
	httpClient := &http.Client{
		Timeout: requestTimeoutSec * time.Second,
		Transport: &oauth2.Transport{
			Source: ts,
			Base:   http.DefaultTransport,
		},
	}

	// Create GitHub client with custom HTTP client
	client := github.NewClient(httpClient)
	client.UserAgent = userAgent

	return client
}
