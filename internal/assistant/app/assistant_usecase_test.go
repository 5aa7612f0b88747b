package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studymate/internal/assistant/adapters/openrouter"
	"studymate/internal/assistant/app"
	"studymate/internal/assistant/domain/entities"
	"studymate/internal/resilience"
	"studymate/internal/shared"
)

type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) Complete(ctx context.Context, userMessage, systemPrompt string) (string, error) {
	args := m.Called(ctx, userMessage, systemPrompt)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionService) Model() string { return "test/model" }

func (m *MockCompletionService) Configured() bool { return true }

func newResilience() *resilience.ServiceResilience {
	return resilience.NewServiceResilience("ai",
		resilience.RetryConfig{
			MaxAttempts:    2,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     time.Millisecond,
			BackoffFactor:  2,
			ShouldRetry:    openrouter.ShouldRetry,
		},
		resilience.CircuitBreakerConfig{ErrorThreshold: 5, Timeout: time.Minute, SuccessThreshold: 1, IsFailure: openrouter.IsFailure})
}

func TestAssistant_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		completion := new(MockCompletionService)
		completion.On("Complete", mock.Anything, "What is a derivative?", mock.AnythingOfType("string")).
			Return("A rate of change", nil).Once()

		reply, err := app.NewAssistantUseCase(completion, newResilience()).Chat(ctx, " What is a derivative? ", "Calculus")

		require.NoError(t, err)
		assert.Equal(t, "A rate of change", reply.Answer)
		assert.Equal(t, "What is a derivative?", reply.Question)
		assert.Equal(t, "Calculus", reply.Context)
		assert.Equal(t, "test/model", reply.Model)
		completion.AssertExpectations(t)
	})

	t.Run("blank question", func(t *testing.T) {
		completion := new(MockCompletionService)

		_, err := app.NewAssistantUseCase(completion, newResilience()).Chat(ctx, "  ", "")

		require.ErrorIs(t, err, entities.ErrEmptyQuestion)
		require.ErrorIs(t, err, shared.ErrValidation)
		completion.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("retries once then surfaces external error", func(t *testing.T) {
		completion := new(MockCompletionService)
		completion.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return("", openrouter.ErrUpstreamStatus).Twice()

		_, err := app.NewAssistantUseCase(completion, newResilience()).Chat(ctx, "q", "")

		require.ErrorIs(t, err, shared.ErrExternalService)
		completion.AssertNumberOfCalls(t, "Complete", 2)
	})

	t.Run("not configured is not retried", func(t *testing.T) {
		completion := new(MockCompletionService)
		completion.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return("", openrouter.ErrNotConfigured).Once()

		_, err := app.NewAssistantUseCase(completion, newResilience()).Chat(ctx, "q", "")

		require.ErrorIs(t, err, shared.ErrNotConfigured)
		completion.AssertNumberOfCalls(t, "Complete", 1)
	})

	t.Run("unknown failure becomes external error", func(t *testing.T) {
		completion := new(MockCompletionService)
		completion.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("boom"))

		_, err := app.NewAssistantUseCase(completion, newResilience()).Chat(ctx, "q", "")

		require.ErrorIs(t, err, shared.ErrExternalService)
	})
}

func TestAssistant_StudyPlan(t *testing.T) {
	ctx := context.Background()
	completion := new(MockCompletionService)
	completion.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("Monday: Math", nil)
	uc := app.NewAssistantUseCase(completion, newResilience())

	_, err := uc.StudyPlan(ctx, []string{" ", ""}, 10)
	require.ErrorIs(t, err, entities.ErrNoSubjects)

	_, err = uc.StudyPlan(ctx, []string{"Math"}, 0)
	require.ErrorIs(t, err, entities.ErrInvalidHours)

	plan, err := uc.StudyPlan(ctx, []string{"Math", " Physics "}, 10)
	require.NoError(t, err)
	assert.Equal(t, "Monday: Math", plan.Plan)
	assert.Equal(t, []string{"Math", "Physics"}, plan.Subjects)
	assert.Equal(t, 10, plan.Hours)
}

func TestAssistant_Summarize(t *testing.T) {
	ctx := context.Background()
	completion := new(MockCompletionService)
	completion.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("short", nil)
	uc := app.NewAssistantUseCase(completion, newResilience())

	_, err := uc.Summarize(ctx, "\n ")
	require.ErrorIs(t, err, entities.ErrEmptyContent)

	summary, err := uc.Summarize(ctx, "long text")
	require.NoError(t, err)
	assert.Equal(t, "short", summary.Summary)
	assert.Equal(t, "long text", summary.Original)
}

func TestAssistant_Health(t *testing.T) {
	health := app.NewAssistantUseCase(new(MockCompletionService), newResilience()).Health(context.Background())

	assert.Equal(t, app.HealthStatus, health.Status)
	assert.Equal(t, []string{app.ServiceChatbot, app.ServiceStudyPlan, app.ServiceSummary}, health.Services)
	assert.True(t, health.Configured)
	assert.Equal(t, "closed", health.Circuit)
}
