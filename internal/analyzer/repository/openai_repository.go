package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-ai-analyzer/internal/analyzer/config"
	"golang-ai-analyzer/internal/analyzer/dto"
	"golang-ai-analyzer/pkg/logger"
	"golang-ai-analyzer/pkg/ratelimit"
	"golang-ai-analyzer/pkg/sanitize"

	"golang.org/x/time/rate"
)

// openaiAIRepository is an implementation of AIRepository that uses the
// OpenAI chat completions API.
type openaiAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAIRepository creates a new instance of openaiAIRepository. The API
// key is validated up front so that a corrupted key fails the process at
// startup rather than on the first request.
func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	if err := sanitize.ValidateCredential(cfg.OpenAI.APIKey); err != nil {
		return nil, fmt.Errorf("openai api key: %w", err)
	}

	secondsPerRequest := time.Minute / time.Duration(cfg.OpenAI.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.OpenAI.MaxTokenPerMinute)

	return &openaiAIRepository{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
	}, nil
}

// GenerateJSON sends the prompt to the chat completions endpoint with
// response_format json_object and returns the raw reply content.
func (r *openaiAIRepository) GenerateJSON(ctx context.Context, systemInstruction, prompt string) (string, error) {
	systemInstruction = sanitize.Text(systemInstruction)
	prompt = sanitize.Text(prompt)

	// The completions endpoint has no token-count call, so the budget is
	// charged with a byte-length estimate before the request goes out.
	estimatedTokens := (len(systemInstruction)+len(prompt))/4 + 1
	if err := r.tokenLimiter.Wait(ctx, estimatedTokens); err != nil {
		r.logger.Error("failed to wait for token limit", logger.ErrorField(err))
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.logger.Error("failed to wait for request limit", logger.ErrorField(err))
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := dto.OpenAIRequest{
		Model: r.cfg.OpenAI.Model,
		Messages: []dto.OpenAIMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &dto.OpenAIResponseFormat{Type: "json_object"},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	r.logger.Debug("Sending request to OpenAI API", logger.StringField("url", r.cfg.OpenAI.BaseURL), logger.StringField("model", r.cfg.OpenAI.Model))

	req, err := http.NewRequestWithContext(ctx, "POST", r.cfg.OpenAI.BaseURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.OpenAI.APIKey))

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Received non-OK response from OpenAI API", logger.IntField("status_code", resp.StatusCode), logger.StringField("model", r.cfg.OpenAI.Model))
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-OK response from OpenAI API: %d - %s", resp.StatusCode, string(body))
	}

	var openaiResp dto.OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if openaiResp.Error != nil {
		return "", fmt.Errorf("openai api error: %s", openaiResp.Error.Message)
	}

	if len(openaiResp.Choices) == 0 || openaiResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content found in OpenAI response")
	}

	return openaiResp.Choices[0].Message.Content, nil
}
