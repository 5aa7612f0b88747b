package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	assistantentities "studymate/internal/assistant/domain/entities"
	assistantapi "studymate/internal/assistant/ports/api"
	authentities "studymate/internal/auth/domain/entities"
	"studymate/internal/auth/domain/services"
	authapi "studymate/internal/auth/ports/api"
	studyentities "studymate/internal/study/domain/entities"
	studyapi "studymate/internal/study/ports/api"
)

// Моки перекрывают только сценарии, принимающие тело запроса.
// Остальные методы встроенного интерфейса не должны вызываться.

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, header string) (*authentities.User, error) {
	args := m.Called(ctx, header)
	if u, ok := args.Get(0).(*authentities.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthUseCase struct {
	mock.Mock
	authapi.AuthUseCase
}

func (m *MockAuthUseCase) Register(ctx context.Context, input authapi.RegisterInput) (*services.AuthResult, error) {
	args := m.Called(ctx, input)
	if r, ok := args.Get(0).(*services.AuthResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if r, ok := args.Get(0).(*services.AuthResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
	authapi.UserUseCase
}

func (m *MockUserUseCase) UpdateProfile(ctx context.Context, userID string, input authapi.ProfileInput) (*authentities.User, error) {
	args := m.Called(ctx, userID, input)
	if u, ok := args.Get(0).(*authentities.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSubjectUseCase struct {
	mock.Mock
	studyapi.SubjectUseCase
}

func (m *MockSubjectUseCase) Create(ctx context.Context, input studyapi.SubjectInput, ownerID string) (*studyentities.Subject, error) {
	args := m.Called(ctx, input, ownerID)
	if s, ok := args.Get(0).(*studyentities.Subject); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubjectUseCase) Update(ctx context.Context, id string, input studyapi.SubjectInput, ownerID string) (*studyentities.Subject, error) {
	args := m.Called(ctx, id, input, ownerID)
	if s, ok := args.Get(0).(*studyentities.Subject); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNoteUseCase struct {
	mock.Mock
	studyapi.NoteUseCase
}

func (m *MockNoteUseCase) Create(ctx context.Context, input studyapi.NoteInput, ownerID string) (*studyentities.Note, error) {
	args := m.Called(ctx, input, ownerID)
	if n, ok := args.Get(0).(*studyentities.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNoteUseCase) Update(ctx context.Context, id string, input studyapi.NoteInput, ownerID string) (*studyentities.Note, error) {
	args := m.Called(ctx, id, input, ownerID)
	if n, ok := args.Get(0).(*studyentities.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTaskUseCase struct {
	mock.Mock
	studyapi.TaskUseCase
}

func (m *MockTaskUseCase) Create(ctx context.Context, input studyapi.TaskInput, ownerID string) (*studyentities.Task, error) {
	args := m.Called(ctx, input, ownerID)
	if t, ok := args.Get(0).(*studyentities.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskUseCase) Update(ctx context.Context, id string, input studyapi.TaskInput, ownerID string) (*studyentities.Task, error) {
	args := m.Called(ctx, id, input, ownerID)
	if t, ok := args.Get(0).(*studyentities.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAssistantUseCase struct {
	mock.Mock
	assistantapi.AssistantUseCase
}

func (m *MockAssistantUseCase) Chat(ctx context.Context, question, extraContext string) (*assistantentities.ChatReply, error) {
	args := m.Called(ctx, question, extraContext)
	if r, ok := args.Get(0).(*assistantentities.ChatReply); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssistantUseCase) StudyPlan(ctx context.Context, subjects []string, hours int) (*assistantentities.StudyPlan, error) {
	args := m.Called(ctx, subjects, hours)
	if p, ok := args.Get(0).(*assistantentities.StudyPlan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssistantUseCase) Summarize(ctx context.Context, content string) (*assistantentities.Summary, error) {
	args := m.Called(ctx, content)
	if s, ok := args.Get(0).(*assistantentities.Summary); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
