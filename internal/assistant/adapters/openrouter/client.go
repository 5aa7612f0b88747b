// Package openrouter реализует CompletionService поверх OpenRouter-совместимого API.
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3/client"
	"go.uber.org/zap"

	"studymate/internal/assistant/ports/services"
	"studymate/internal/config"
	"studymate/internal/shared"
	"studymate/pkg/logger"
)

const completionsPath = "/chat/completions"

// Ошибки клиента.
var (
	ErrNotConfigured   = fmt.Errorf("%w: AI service API key is not set", shared.ErrNotConfigured)
	ErrRequestFailed   = fmt.Errorf("%w: request to AI service failed", shared.ErrExternalService)
	ErrUpstreamStatus  = fmt.Errorf("%w: AI service returned an error status", shared.ErrExternalService)
	ErrUpstreamRejects = fmt.Errorf("%w: AI service rejected the request", shared.ErrExternalService)
	ErrEmptyCompletion = fmt.Errorf("%w: AI service returned no choices", shared.ErrExternalService)
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int     `json:"index"`
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}

// Client - клиент chat-completion API.
type Client struct {
	http *client.Client
	cfg  config.OpenRouterConfig
}

// NewClient создает клиент. Таймаут попытки задается контекстом вызывающего.
func NewClient(cfg config.OpenRouterConfig) services.CompletionService {
	return &Client{
		http: client.New().SetTimeout(cfg.Timeout),
		cfg:  cfg,
	}
}

func (c *Client) Model() string { return c.cfg.Model }

func (c *Client) Configured() bool { return c.cfg.IsConfigured() }

// Complete отправляет одно системное и одно пользовательское сообщение.
// Без ключа API возвращает ErrNotConfigured, не выполняя запрос.
func (c *Client) Complete(ctx context.Context, userMessage, systemPrompt string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "openrouter.Complete"), zap.String("model", c.cfg.Model))

	if !c.cfg.IsConfigured() {
		log.Warn(ctx, "AI API key is not configured")
		return "", ErrNotConfigured
	}

	messages := make([]message, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, message{Role: "user", Content: userMessage})

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.cfg.APIKey).
		SetHeader("HTTP-Referer", c.cfg.Referer).
		SetHeader("X-Title", c.cfg.Title).
		SetJSON(completionRequest{
			Model:       c.cfg.Model,
			Messages:    messages,
			Temperature: c.cfg.Temperature,
			MaxTokens:   c.cfg.MaxTokens,
		}).
		Post(strings.TrimRight(c.cfg.BaseURL, "/") + completionsPath)
	if err != nil {
		log.Error(ctx, "AI request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Close()

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		log.Error(ctx, "AI service returned error status", zap.Int("status", status))
		if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %d", ErrUpstreamStatus, status)
		}
		return "", fmt.Errorf("%w: %d", ErrUpstreamRejects, status)
	}

	var body completionResponse
	if err := resp.JSON(&body); err != nil {
		log.Error(ctx, "failed to decode AI response", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if len(body.Choices) == 0 || strings.TrimSpace(body.Choices[0].Message.Content) == "" {
		log.Error(ctx, "AI response has no content", zap.String("responseID", body.ID))
		return "", ErrEmptyCompletion
	}

	log.Debug(ctx, "AI response received", zap.String("responseID", body.ID))
	return body.Choices[0].Message.Content, nil
}

// ShouldRetry сообщает, имеет ли смысл повторить запрос после ошибки.
// Отсутствие ключа и отказы 4xx не повторяются.
func ShouldRetry(err error) bool {
	return !errors.Is(err, shared.ErrNotConfigured) &&
		!errors.Is(err, ErrUpstreamRejects) &&
		!errors.Is(err, context.Canceled)
}

// IsFailure сообщает, считать ли ошибку отказом сервиса для Circuit Breaker.
func IsFailure(err error) bool {
	return !errors.Is(err, shared.ErrNotConfigured) && !errors.Is(err, ErrUpstreamRejects)
}
