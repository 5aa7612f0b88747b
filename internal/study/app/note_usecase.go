package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/api"
	"studymate/internal/study/ports/repositories"
	"studymate/pkg/logger"
)

const (
	errCtxCreatingNote = "creating note"
	errCtxGettingNote  = "getting note"
	errCtxListingNotes = "listing notes"
	errCtxUpdatingNote = "updating note"
	errCtxDeletingNote = "deleting note"
)

// NoteUseCaseImpl реализует api.NoteUseCase.
type NoteUseCaseImpl struct {
	base
	notes    repositories.NoteRepository
	subjects repositories.SubjectRepository
}

// NewNoteUseCase создает сценарии заметок.
func NewNoteUseCase(
	notes repositories.NoteRepository, subjects repositories.SubjectRepository, opts ...Option,
) api.NoteUseCase {
	return &NoteUseCaseImpl{base: newBase(opts), notes: notes, subjects: subjects}
}

func applyNoteInput(n *entities.Note, input api.NoteInput) {
	n.Title = input.Title
	n.Content = input.Content
	n.Color = input.Color
	n.Favorite = input.Favorite
	n.SubjectID = input.SubjectID
}

// Create сохраняет заметку; предмет, если указан, должен принадлежать владельцу.
func (uc *NoteUseCaseImpl) Create(ctx context.Context, input api.NoteInput, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Create"), zap.String("ownerID", ownerID))

	now := uc.now()
	note := &entities.Note{ID: uc.newID(), OwnerID: ownerID, CreatedAt: now, UpdatedAt: now}
	applyNoteInput(note, input)
	if err := note.Normalize(); err != nil {
		log.Debug(ctx, "invalid note", zap.Error(err))
		return nil, err
	}
	if err := resolveSubject(ctx, uc.subjects, note.SubjectID, ownerID); err != nil {
		log.Debug(ctx, "subject reference rejected", zap.Error(err))
		return nil, wrap(errCtxCreatingNote, err)
	}

	created, err := uc.notes.Create(ctx, note)
	if err != nil {
		return nil, wrap(errCtxCreatingNote, err)
	}

	log.Info(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

func (uc *NoteUseCaseImpl) GetByID(ctx context.Context, id, ownerID string) (*entities.Note, error) {
	note, err := loadOwned[*entities.Note](ctx, uc.notes, id, ownerID, entities.ErrNoteForbidden)
	if err != nil {
		return nil, wrap(errCtxGettingNote, err)
	}
	return note, nil
}

func (uc *NoteUseCaseImpl) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	notes, err := uc.notes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, wrap(errCtxListingNotes, err)
	}
	return notes, nil
}

// ListBySubject возвращает заметки предмета, принадлежащего владельцу.
func (uc *NoteUseCaseImpl) ListBySubject(ctx context.Context, subjectID, ownerID string) ([]*entities.Note, error) {
	if _, err := loadOwned[*entities.Subject](ctx, uc.subjects, subjectID, ownerID, entities.ErrSubjectForbidden); err != nil {
		return nil, wrap(errCtxGettingSubject, err)
	}
	notes, err := uc.notes.ListBySubject(ctx, ownerID, subjectID)
	if err != nil {
		return nil, wrap(errCtxListingNotes, err)
	}
	return notes, nil
}

// SearchByTitle ищет по подстроке заголовка; пустой запрос возвращает все заметки.
func (uc *NoteUseCaseImpl) SearchByTitle(ctx context.Context, query, ownerID string) ([]*entities.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.ListByOwner(ctx, ownerID)
	}
	notes, err := uc.notes.SearchByTitle(ctx, ownerID, query)
	if err != nil {
		return nil, wrap(errCtxListingNotes, err)
	}
	return notes, nil
}

// Update заменяет изменяемые поля и обновляет updated_at.
func (uc *NoteUseCaseImpl) Update(ctx context.Context, id string, input api.NoteInput, ownerID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Update"), zap.String("noteID", id))

	note, err := loadOwned[*entities.Note](ctx, uc.notes, id, ownerID, entities.ErrNoteForbidden)
	if err != nil {
		return nil, wrap(errCtxGettingNote, err)
	}

	applyNoteInput(note, input)
	if err := note.Normalize(); err != nil {
		return nil, err
	}
	if err := resolveSubject(ctx, uc.subjects, note.SubjectID, ownerID); err != nil {
		return nil, wrap(errCtxUpdatingNote, err)
	}
	note.UpdatedAt = uc.now()

	updated, err := uc.notes.Update(ctx, note)
	if err != nil {
		return nil, wrap(errCtxUpdatingNote, err)
	}

	log.Info(ctx, "note updated")
	return updated, nil
}

func (uc *NoteUseCaseImpl) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := loadOwned[*entities.Note](ctx, uc.notes, id, ownerID, entities.ErrNoteForbidden); err != nil {
		return wrap(errCtxGettingNote, err)
	}
	if err := uc.notes.Delete(ctx, id, ownerID); err != nil {
		return wrap(errCtxDeletingNote, err)
	}

	logger.Log(ctx).Info(ctx, "note deleted", zap.String("noteID", id))
	return nil
}
