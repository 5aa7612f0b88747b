// Package app содержит сценарии учебного ассистента.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"studymate/internal/assistant/domain/entities"
	"studymate/internal/assistant/domain/prompts"
	"studymate/internal/assistant/ports/api"
	"studymate/internal/assistant/ports/services"
	"studymate/internal/resilience"
	"studymate/internal/shared"
	"studymate/pkg/logger"
)

// Состояние и перечень функций для проверки здоровья.
const (
	HealthStatus = "AI Service is running"

	ServiceChatbot   = "chatbot"
	ServiceStudyPlan = "plan-estudio"
	ServiceSummary   = "resumir-pdf"
)

const (
	opChat      = "chat"
	opStudyPlan = "study_plan"
	opSummarize = "summarize"
)

// AssistantUseCaseImpl реализует api.AssistantUseCase.
type AssistantUseCaseImpl struct {
	completion services.CompletionService
	resilience *resilience.ServiceResilience
	now        func() time.Time
}

// NewAssistantUseCase создает сценарии ассистента; вызовы модели идут через resilience.
func NewAssistantUseCase(
	completion services.CompletionService, res *resilience.ServiceResilience,
) api.AssistantUseCase {
	return &AssistantUseCaseImpl{
		completion: completion,
		resilience: res,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *AssistantUseCaseImpl) complete(ctx context.Context, op, userMessage, systemPrompt string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "AssistantUseCase."+op))

	text, err := resilience.Execute(ctx, uc.resilience, op, func(attemptCtx context.Context) (string, error) {
		return uc.completion.Complete(attemptCtx, userMessage, systemPrompt)
	})
	if err == nil {
		return text, nil
	}

	log.Warn(ctx, "completion failed", zap.Error(err))
	if errors.Is(err, shared.ErrNotConfigured) || errors.Is(err, shared.ErrExternalService) {
		return "", err
	}
	return "", fmt.Errorf("%w: %w", shared.ErrExternalService, err)
}

// Chat отвечает на учебный вопрос с необязательным контекстом.
func (uc *AssistantUseCaseImpl) Chat(ctx context.Context, question, extraContext string) (*entities.ChatReply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, entities.ErrEmptyQuestion
	}

	answer, err := uc.complete(ctx, opChat, question, prompts.ChatSystem(extraContext))
	if err != nil {
		return nil, err
	}
	return &entities.ChatReply{
		Answer:    answer,
		Question:  question,
		Context:   extraContext,
		Model:     uc.completion.Model(),
		CreatedAt: uc.now(),
	}, nil
}

// StudyPlan строит недельный план по списку предметов.
func (uc *AssistantUseCaseImpl) StudyPlan(ctx context.Context, subjects []string, hours int) (*entities.StudyPlan, error) {
	cleaned := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil, entities.ErrNoSubjects
	}
	if hours <= 0 {
		return nil, entities.ErrInvalidHours
	}

	plan, err := uc.complete(ctx, opStudyPlan, prompts.StudyPlanMessage(cleaned, hours), prompts.StudyPlanSystem)
	if err != nil {
		return nil, err
	}
	return &entities.StudyPlan{
		Plan:      plan,
		Subjects:  cleaned,
		Hours:     hours,
		Model:     uc.completion.Model(),
		CreatedAt: uc.now(),
	}, nil
}

// Summarize делает конспект уже извлеченного текста.
func (uc *AssistantUseCaseImpl) Summarize(ctx context.Context, content string) (*entities.Summary, error) {
	if strings.TrimSpace(content) == "" {
		return nil, entities.ErrEmptyContent
	}

	summary, err := uc.complete(ctx, opSummarize, prompts.SummaryMessage(content), prompts.SummarySystem)
	if err != nil {
		return nil, err
	}
	return &entities.Summary{
		Summary:   summary,
		Original:  content,
		Model:     uc.completion.Model(),
		CreatedAt: uc.now(),
	}, nil
}

// Health не обращается к внешнему API.
func (uc *AssistantUseCaseImpl) Health(_ context.Context) *entities.Health {
	return &entities.Health{
		Status:     HealthStatus,
		Services:   []string{ServiceChatbot, ServiceStudyPlan, ServiceSummary},
		Configured: uc.completion.Configured(),
		Circuit:    uc.resilience.State().String(),
		CheckedAt:  uc.now(),
	}
}
