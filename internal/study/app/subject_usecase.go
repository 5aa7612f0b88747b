package app

import (
	"context"

	"go.uber.org/zap"

	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/api"
	"studymate/internal/study/ports/repositories"
	"studymate/pkg/logger"
)

const (
	errCtxCreatingSubject = "creating subject"
	errCtxGettingSubject  = "getting subject"
	errCtxListingSubjects = "listing subjects"
	errCtxUpdatingSubject = "updating subject"
	errCtxDeletingSubject = "deleting subject"
	errCtxCheckingName    = "checking subject name"
)

// SubjectUseCaseImpl реализует api.SubjectUseCase.
type SubjectUseCaseImpl struct {
	base
	subjects repositories.SubjectRepository
}

// NewSubjectUseCase создает сценарии предметов.
func NewSubjectUseCase(subjects repositories.SubjectRepository, opts ...Option) api.SubjectUseCase {
	return &SubjectUseCaseImpl{base: newBase(opts), subjects: subjects}
}

func applySubjectInput(s *entities.Subject, input api.SubjectInput) {
	s.Name = input.Name
	s.Code = input.Code
	s.Description = input.Description
	s.Credits = input.Credits
	s.Color = input.Color
	s.Professor = input.Professor
	s.Schedule = input.Schedule
}

func (uc *SubjectUseCaseImpl) checkName(ctx context.Context, s *entities.Subject) error {
	taken, err := uc.subjects.ExistsByName(ctx, s.OwnerID, s.Name, s.ID)
	if err != nil {
		return wrap(errCtxCheckingName, err)
	}
	if taken {
		return entities.ErrSubjectNameTaken
	}
	return nil
}

// Create проверяет поля и уникальность имени у владельца, затем сохраняет предмет.
func (uc *SubjectUseCaseImpl) Create(ctx context.Context, input api.SubjectInput, ownerID string) (*entities.Subject, error) {
	log := logger.Log(ctx).With(zap.String("method", "SubjectUseCase.Create"), zap.String("ownerID", ownerID))

	subject := &entities.Subject{ID: uc.newID(), OwnerID: ownerID, Active: true, CreatedAt: uc.now()}
	applySubjectInput(subject, input)
	if err := subject.Normalize(); err != nil {
		log.Debug(ctx, "invalid subject", zap.Error(err))
		return nil, err
	}
	if err := uc.checkName(ctx, subject); err != nil {
		return nil, err
	}

	created, err := uc.subjects.Create(ctx, subject)
	if err != nil {
		return nil, wrap(errCtxCreatingSubject, err)
	}

	log.Info(ctx, "subject created", zap.String("subjectID", created.ID))
	return created, nil
}

func (uc *SubjectUseCaseImpl) GetByID(ctx context.Context, id, ownerID string) (*entities.Subject, error) {
	subject, err := loadOwned[*entities.Subject](ctx, uc.subjects, id, ownerID, entities.ErrSubjectForbidden)
	if err != nil {
		return nil, wrap(errCtxGettingSubject, err)
	}
	return subject, nil
}

func (uc *SubjectUseCaseImpl) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Subject, error) {
	subjects, err := uc.subjects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, wrap(errCtxListingSubjects, err)
	}
	return subjects, nil
}

// Update заменяет изменяемые поля; владелец, активность и дата создания сохраняются.
func (uc *SubjectUseCaseImpl) Update(
	ctx context.Context, id string, input api.SubjectInput, ownerID string,
) (*entities.Subject, error) {
	log := logger.Log(ctx).With(zap.String("method", "SubjectUseCase.Update"), zap.String("subjectID", id))

	subject, err := loadOwned[*entities.Subject](ctx, uc.subjects, id, ownerID, entities.ErrSubjectForbidden)
	if err != nil {
		return nil, wrap(errCtxGettingSubject, err)
	}

	applySubjectInput(subject, input)
	if err := subject.Normalize(); err != nil {
		return nil, err
	}
	if err := uc.checkName(ctx, subject); err != nil {
		return nil, err
	}

	updated, err := uc.subjects.Update(ctx, subject)
	if err != nil {
		return nil, wrap(errCtxUpdatingSubject, err)
	}

	log.Info(ctx, "subject updated")
	return updated, nil
}

// Delete удаляет предмет; его заметки и задачи становятся общими.
func (uc *SubjectUseCaseImpl) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := loadOwned[*entities.Subject](ctx, uc.subjects, id, ownerID, entities.ErrSubjectForbidden); err != nil {
		return wrap(errCtxGettingSubject, err)
	}
	if err := uc.subjects.Delete(ctx, id, ownerID); err != nil {
		return wrap(errCtxDeletingSubject, err)
	}

	logger.Log(ctx).Info(ctx, "subject deleted", zap.String("subjectID", id))
	return nil
}
