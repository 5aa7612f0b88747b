// Package services описывает внешние зависимости ассистента.
package services

import "context"

// CompletionService - однократный запрос к chat-completion API.
type CompletionService interface {
	Complete(ctx context.Context, userMessage, systemPrompt string) (string, error)
	// Model возвращает идентификатор модели для ответов API.
	Model() string
	// Configured сообщает, задан ли ключ доступа.
	Configured() bool
}
