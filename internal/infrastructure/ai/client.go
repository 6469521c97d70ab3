// Package ai provides the generative AI client used for recipe
// recommendation, receipt extraction, and planner suggestions.
// It wraps an OpenAI-compatible chat completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fridgewise/v1/internal/infrastructure/config"
	apperrors "github.com/fridgewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// RateLimitError signals the provider rejected a call for rate limiting.
// The retry wrapper keys on this type; anything else propagates as-is.
type RateLimitError struct {
	StatusCode int
	Body       string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited by AI provider (status %d)", e.StatusCode)
}

// IsRateLimited reports whether err is a provider rate-limit signal
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

// Client implements the ChatService port against an OpenAI-compatible API
type Client struct {
	cfg    config.AIConfig
	client *http.Client
	logger *zap.Logger
	retry  RetryPolicy
}

// NewClient creates a new chat completion client
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
		retry: RetryPolicy{
			MaxAttempts: cfg.MaxAttempts,
			BackoffStep: cfg.BackoffStep,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete sends an instruction and returns the raw response text.
// Rate-limit responses are retried per the configured policy; the
// final failure surfaces as a distinct "try again later" error.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", apperrors.NewConfigMissingError("ai.api_key")
	}

	msg := chatMessage{Role: "user", Content: prompt}
	return c.completeWithRetry(ctx, c.cfg.Model, []chatMessage{msg})
}

// CompleteWithImage sends an instruction together with an inline image
func (c *Client) CompleteWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", apperrors.NewConfigMissingError("ai.api_key")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	msg := chatMessage{
		Role: "user",
		Content: []contentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
		},
	}
	return c.completeWithRetry(ctx, c.cfg.VisionModel, []chatMessage{msg})
}

func (c *Client) completeWithRetry(ctx context.Context, model string, messages []chatMessage) (string, error) {
	text, err := c.retry.Do(ctx, func(ctx context.Context) (string, error) {
		return c.call(ctx, model, messages)
	}, IsRateLimited)
	if err != nil {
		return "", err
	}
	return text, nil
}

// call performs one chat completion request
func (c *Client) call(ctx context.Context, model string, messages []chatMessage) (string, error) {
	aiRequestsTotal.Inc()

	reqBody := chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode AI request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to build AI request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		aiTransportErrorsTotal.Inc()
		return "", apperrors.NewAITransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		aiTransportErrorsTotal.Inc()
		return "", apperrors.NewAITransportError(err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		aiRateLimitedTotal.Inc()
		return "", &RateLimitError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if resp.StatusCode != http.StatusOK {
		aiTransportErrorsTotal.Inc()
		return "", apperrors.NewAITransportError(fmt.Errorf("AI provider returned status %d", resp.StatusCode))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", apperrors.NewAIMalformedOutputError("provider response is not valid JSON").WithCause(err)
	}
	if len(chatResp.Choices) == 0 {
		return "", apperrors.NewAIMalformedOutputError("provider returned no choices")
	}

	c.logger.Debug("AI call completed",
		zap.String("model", model),
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}
