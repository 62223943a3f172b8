package input

import (
	"testing"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		defaultOwner string
		expected     RepoRef
		expectError  bool
	}{
		{
			name:     "owner/repo form",
			raw:      "methodcrm/runtime-core",
			expected: RepoRef{Owner: "methodcrm", Repo: "runtime-core"},
		},
		{
			name:         "bare repo with default owner",
			raw:          "runtime-core",
			defaultOwner: "methodcrm",
			expected:     RepoRef{Owner: "methodcrm", Repo: "runtime-core"},
		},
		{
			name:        "bare repo without default owner",
			raw:         "runtime-core",
			expectError: true,
		},
		{
			name:     "full github URL",
			raw:      "https://github.com/octocat/Hello-World",
			expected: RepoRef{Owner: "octocat", Repo: "Hello-World"},
		},
		{
			name:     "github URL with .git suffix",
			raw:      "https://github.com/octocat/Hello-World.git",
			expected: RepoRef{Owner: "octocat", Repo: "Hello-World"},
		},
		{
			name:     "surrounding whitespace",
			raw:      "  owner/repo  ",
			expected: RepoRef{Owner: "owner", Repo: "repo"},
		},
		{
			name:        "empty string",
			raw:         "",
			expectError: true,
		},
		{
			name:        "too many segments",
			raw:         "a/b/c",
			expectError: true,
		},
		{
			name:        "missing repo segment",
			raw:         "owner/",
			expectError: true,
		},
		{
			name:        "missing owner segment",
			raw:         "/repo",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoRef(tt.raw, tt.defaultOwner)
			if tt.expectError {
				if err == nil {
					t.Fatalf("ParseRepoRef(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoRef(%q) error = %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Errorf("ParseRepoRef(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestRepoRefString(t *testing.T) {
	ref := RepoRef{Owner: "octocat", Repo: "Hello-World"}
	if got := ref.String(); got != "octocat/Hello-World" {
		t.Errorf("String() = %q", got)
	}
	if got := ref.URL(); got != "https://github.com/octocat/Hello-World" {
		t.Errorf("URL() = %q", got)
	}
}
