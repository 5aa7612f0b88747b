// Package api описывает сценарии работы с предметами, заметками и задачами.
// ownerID всегда берется из разрешенной личности запроса.
package api

import (
	"context"
	"time"

	"studymate/internal/study/domain/entities"
)

// SubjectInput - изменяемые поля предмета.
type SubjectInput struct {
	Name        string
	Code        *string
	Description *string
	Credits     *int
	Color       string
	Professor   *string
	Schedule    *string
}

// NoteInput - изменяемые поля заметки.
type NoteInput struct {
	Title     string
	Content   string
	Color     string
	Favorite  bool
	SubjectID *string
}

// TaskInput - изменяемые поля задачи. Completed == nil при обновлении сохраняет текущее значение.
type TaskInput struct {
	Title       string
	Description *string
	DueAt       *time.Time
	Priority    entities.Priority
	Completed   *bool
	SubjectID   *string
}

// SubjectUseCase - операции над предметами.
type SubjectUseCase interface {
	Create(ctx context.Context, input SubjectInput, ownerID string) (*entities.Subject, error)
	GetByID(ctx context.Context, id, ownerID string) (*entities.Subject, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Subject, error)
	Update(ctx context.Context, id string, input SubjectInput, ownerID string) (*entities.Subject, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// NoteUseCase - операции над заметками.
type NoteUseCase interface {
	Create(ctx context.Context, input NoteInput, ownerID string) (*entities.Note, error)
	GetByID(ctx context.Context, id, ownerID string) (*entities.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error)
	ListBySubject(ctx context.Context, subjectID, ownerID string) ([]*entities.Note, error)
	SearchByTitle(ctx context.Context, query, ownerID string) ([]*entities.Note, error)
	Update(ctx context.Context, id string, input NoteInput, ownerID string) (*entities.Note, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// TaskUseCase - операции над задачами.
type TaskUseCase interface {
	Create(ctx context.Context, input TaskInput, ownerID string) (*entities.Task, error)
	GetByID(ctx context.Context, id, ownerID string) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error)
	ListBySubject(ctx context.Context, subjectID, ownerID string) ([]*entities.Task, error)
	ListGeneral(ctx context.Context, ownerID string) ([]*entities.Task, error)
	ListPending(ctx context.Context, ownerID string) ([]*entities.Task, error)
	ListUrgent(ctx context.Context, ownerID string) ([]*entities.Task, error)
	Update(ctx context.Context, id string, input TaskInput, ownerID string) (*entities.Task, error)
	MarkComplete(ctx context.Context, id, ownerID string) (*entities.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}
