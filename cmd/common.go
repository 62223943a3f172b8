package cmd

import (
	"log/slog"
	"os"

	"github.com/mhosseinMethod/last-commit-slack-bot/internal/ai"
	"github.com/mhosseinMethod/last-commit-slack-bot/internal/config"
)

// initSummarizer creates the appropriate AI summarizer based on configuration
func initSummarizer(cfg *config.Config, logger *slog.Logger) ai.Summarizer {
	if cfg.OpenAI.Enabled {
		logger.Debug("AI summarization enabled", "model", cfg.OpenAI.Model)
		return ai.NewOpenAIClient(cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.OpenAI.APIKey)
	}
	logger.Debug("AI summarization disabled")
	return ai.NewNoopSummarizer()
}

// setupLogger creates a logger configured for progress output
func setupLogger(cfg *config.Config) *slog.Logger {
	if cfg.Quiet {
		// Discard all log output when quiet
		return slog.New(slog.NewTextHandler(os.NewFile(0, os.DevNull), &slog.HandlerOptions{
			Level: slog.LevelError + 1, // Higher than any log level to discard all
		}))
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	// Use stderr for progress so stdout stays clean for output
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time stamps for cleaner progress output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
