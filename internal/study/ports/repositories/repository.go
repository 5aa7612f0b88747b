// Package repositories описывает хранилища учебных сущностей.
// Update и Delete ограничены владельцем: чужая запись ведет себя как отсутствующая.
package repositories

import (
	"context"
	"time"

	"studymate/internal/study/domain/entities"
)

// Repository - общий набор операций для сущности с владельцем.
type Repository[E entities.Owned] interface {
	Create(ctx context.Context, entity E) (E, error)

	FindByID(ctx context.Context, id string) (E, error)

	ListByOwner(ctx context.Context, ownerID string) ([]E, error)

	Update(ctx context.Context, entity E) (E, error)

	Delete(ctx context.Context, id, ownerID string) error
}

// SubjectRepository хранит предметы.
type SubjectRepository interface {
	Repository[*entities.Subject]

	// ExistsByName ищет предмет владельца с таким именем, исключая excludeID.
	ExistsByName(ctx context.Context, ownerID, name, excludeID string) (bool, error)
}

// NoteRepository хранит заметки.
type NoteRepository interface {
	Repository[*entities.Note]

	ListBySubject(ctx context.Context, ownerID, subjectID string) ([]*entities.Note, error)

	SearchByTitle(ctx context.Context, ownerID, query string) ([]*entities.Note, error)
}

// TaskRepository хранит задачи.
type TaskRepository interface {
	Repository[*entities.Task]

	ListBySubject(ctx context.Context, ownerID, subjectID string) ([]*entities.Task, error)

	ListGeneral(ctx context.Context, ownerID string) ([]*entities.Task, error)

	ListPending(ctx context.Context, ownerID string) ([]*entities.Task, error)

	// ListDueBefore возвращает невыполненные задачи со сроком не позже before.
	ListDueBefore(ctx context.Context, ownerID string, before time.Time) ([]*entities.Task, error)
}
