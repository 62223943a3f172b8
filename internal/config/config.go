package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	GitHubToken  string
	DefaultOwner string
	Verbose      bool
	Quiet        bool
	OpenAI       struct {
		APIKey  string
		BaseURL string
		Model   string
		Enabled bool
	}
}

// FromEnv creates a Config from environment variables and CLI flags
func FromEnv(verbose, quiet bool) (*Config, error) {
	// Load environment variables from env files if they exist
	_ = godotenv.Load(".env.local") // Silently ignore if the file doesn't exist
	_ = godotenv.Load()

	config := &Config{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		DefaultOwner: os.Getenv("GITHUB_DEFAULT_OWNER"),
		Verbose:      verbose && !quiet, // verbose is disabled if quiet is set
		Quiet:        quiet,
	}

	// Validate required GitHub token
	if config.GitHubToken == "" {
		return nil, errors.New("GITHUB_TOKEN environment variable is required")
	}

	// Set up AI summarization configuration
	config.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")

	config.OpenAI.BaseURL = os.Getenv("OPENAI_BASE_URL")
	if config.OpenAI.BaseURL == "" {
		config.OpenAI.BaseURL = "https://api.openai.com/v1"
	}

	config.OpenAI.Model = os.Getenv("OPENAI_MODEL")
	if config.OpenAI.Model == "" {
		config.OpenAI.Model = "gpt-4o-mini"
	}

	// Summarization needs a key and can be disabled explicitly
	config.OpenAI.Enabled = config.OpenAI.APIKey != "" && os.Getenv("DISABLE_SUMMARY") == ""

	return config, nil
}
