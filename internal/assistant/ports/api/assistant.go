// Package api описывает сценарии учебного ассистента.
package api

import (
	"context"

	"studymate/internal/assistant/domain/entities"
)

// AssistantUseCase - чат-бот, план занятий и конспект текста.
type AssistantUseCase interface {
	Chat(ctx context.Context, question, extraContext string) (*entities.ChatReply, error)
	StudyPlan(ctx context.Context, subjects []string, hours int) (*entities.StudyPlan, error)
	Summarize(ctx context.Context, content string) (*entities.Summary, error)
	Health(ctx context.Context) *entities.Health
}
