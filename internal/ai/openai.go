package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// OpenAIClient implements Summarizer using an OpenAI-compatible chat
// completions API
type OpenAIClient struct {
	HTTP    *http.Client
	BaseURL string
	Model   string
	APIKey  string
}

// NewOpenAIClient creates a new chat completions API client
func NewOpenAIClient(baseURL, model, apiKey string) *OpenAIClient {
	return &OpenAIClient{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Model:   model,
		APIKey:  apiKey,
	}
}

// chatCompletionRequest represents the OpenAI-compatible request format
type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse represents the OpenAI-compatible response format
type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message message `json:"message"`
}

const (
	prSystemPrompt = "You are a code review assistant. Summarize pull request changes in 1-2 concise sentences. Focus on WHAT changed and WHY."
	prMaxTokens    = 100
	prTemperature  = 0.3

	activitySystemPrompt = "You are a repository activity summarizer. Analyze recent commits and provide a brief 2-3 sentence overview of the recent development activity. Focus on themes, patterns, and overall direction."
	activityMaxTokens    = 150
	activityTemperature  = 0.4
)

// SummarizePR generates a summary of one pull request's reviewer overview
func (c *OpenAIClient) SummarizePR(ctx context.Context, prTitle, overview string) (string, error) {
	logger := loggerFrom(ctx)
	logger.Debug("AI summarizing PR overview", "model", c.Model, "title", prTitle)

	userPrompt := fmt.Sprintf("PR Title: %s\n\nCopilot Overview:\n%s\n\nProvide a brief 1-2 sentence summary.", prTitle, overview)
	return c.callAPI(ctx, prSystemPrompt, userPrompt, prMaxTokens, prTemperature)
}

// SummarizeActivity generates an overall summary for a batch of commits
func (c *OpenAIClient) SummarizeActivity(ctx context.Context, items []ActivityItem) (string, error) {
	logger := loggerFrom(ctx)
	logger.Debug("AI summarizing repo activity", "model", c.Model, "commits", len(items))

	userPrompt := fmt.Sprintf("Recent commits:\n\n%s\n\nProvide a 2-3 sentence summary of recent repository activity.", DigestLines(items))
	return c.callAPI(ctx, activitySystemPrompt, userPrompt, activityMaxTokens, activityTemperature)
}

// callAPI makes a single HTTP request to the chat completions endpoint.
// Summarization is best-effort enrichment, so failed calls are never retried.
func (c *OpenAIClient) callAPI(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	request := chatCompletionRequest{
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	response, err := c.makeHTTPRequest(ctx, request)
	if err != nil {
		return "", fmt.Errorf("chat completions request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completions API returned empty response")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// makeHTTPRequest performs the actual HTTP request
func (c *OpenAIClient) makeHTTPRequest(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("User-Agent", "last-commit-slack-bot/1.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Headers:    resp.Header,
		}
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &response, nil
}

// loggerFrom pulls the request logger out of the context, falling back to
// the default logger
func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value("logger").(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// HTTPError represents an HTTP error response
type HTTPError struct {
	StatusCode int
	Body       string
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}
