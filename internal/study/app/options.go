// Package app содержит сценарии работы с предметами, заметками и задачами.
// Проверка владения сосредоточена здесь: транспорт передает только ownerID разрешенной личности.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studymate/internal/shared"
	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/repositories"
)

// Option настраивает сценарии.
type Option func(*base)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(newID func() string) Option {
	return func(b *base) { b.newID = newID }
}

type base struct {
	now   func() time.Time
	newID func() string
}

func newBase(opts []Option) base {
	b := base{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// loadOwned загружает сущность и проверяет владельца: отсутствующая дает ошибку хранилища,
// чужая - forbidden.
func loadOwned[E entities.Owned](
	ctx context.Context, repo repositories.Repository[E], id, ownerID string, forbidden error,
) (E, error) {
	entity, err := repo.FindByID(ctx, id)
	if err != nil {
		var zero E
		return zero, err
	}
	if entity.GetOwnerID() != ownerID {
		var zero E
		return zero, forbidden
	}
	return entity, nil
}

// resolveSubject проверяет ссылку на предмет: отсутствующий дает ErrSubjectNotFound,
// чужой - ErrForeignSubject.
func resolveSubject(ctx context.Context, subjects repositories.SubjectRepository, subjectID *string, ownerID string) error {
	if subjectID == nil {
		return nil
	}
	_, err := loadOwned[*entities.Subject](ctx, subjects, *subjectID, ownerID, entities.ErrForeignSubject)
	return err
}

// wrap оставляет доменные ошибки как есть и добавляет контекст к прочим.
func wrap(errCtx string, err error) error {
	if shared.Code(err) != shared.CodeInternal {
		return err
	}
	return fmt.Errorf("%s: %w", errCtx, err)
}
