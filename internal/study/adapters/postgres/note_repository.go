package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/repositories"
	"studymate/pkg/logger"
)

const noteColumns = `id, title, content, color, favorite, owner_id, subject_id, created_at, updated_at`

// NoteRepository реализует repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var n entities.Note
	if err := row.Scan(
		&n.ID,
		&n.Title,
		&n.Content,
		&n.Color,
		&n.Favorite,
		&n.OwnerID,
		&n.SubjectID,
		&n.CreatedAt,
		&n.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, n *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("ownerID", n.OwnerID))

	created, err := scanNote(r.pool.QueryRow(ctx,
		`INSERT INTO notes (`+noteColumns+`)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING `+noteColumns,
		n.ID, n.Title, n.Content, n.Color, n.Favorite, n.OwnerID, n.SubjectID, n.CreatedAt, n.UpdatedAt,
	))
	if err != nil {
		if mapped := domainError(err, entities.ErrNoteNotFound); mapped != nil {
			log.Debug(ctx, "note rejected by constraint", zap.Error(mapped))
			return nil, mapped
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// FindByID получает заметку по ID независимо от владельца.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.FindByID"))

	n, err := scanNote(r.pool.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if err != nil {
		if mapped := domainError(err, entities.ErrNoteNotFound); mapped != nil {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, mapped
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return n, nil
}

func (r *NoteRepository) list(ctx context.Context, method, where string, args ...any) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository."+method))

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE `+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes, err := collect(rows, scanNote)
	if err != nil {
		log.Error(ctx, "failed to read notes", zap.Error(err))
		return nil, err
	}
	return notes, nil
}

// ListByOwner возвращает заметки владельца в порядке создания.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	return r.list(ctx, "ListByOwner", `owner_id = $1`, ownerID)
}

// ListBySubject возвращает заметки владельца, привязанные к предмету.
func (r *NoteRepository) ListBySubject(ctx context.Context, ownerID, subjectID string) ([]*entities.Note, error) {
	return r.list(ctx, "ListBySubject", `owner_id = $1 AND subject_id = $2`, ownerID, subjectID)
}

// SearchByTitle ищет подстроку в заголовке без учета регистра.
func (r *NoteRepository) SearchByTitle(ctx context.Context, ownerID, query string) ([]*entities.Note, error) {
	return r.list(ctx, "SearchByTitle", `owner_id = $1 AND strpos(lower(title), lower($2)) > 0`, ownerID, query)
}

// Update обновляет существующую заметку владельца.
func (r *NoteRepository) Update(ctx context.Context, n *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", n.ID))

	updated, err := scanNote(r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title = $3, content = $4, color = $5, favorite = $6, subject_id = $7, updated_at = $8
         WHERE id = $1 AND owner_id = $2
         RETURNING `+noteColumns,
		n.ID, n.OwnerID, n.Title, n.Content, n.Color, n.Favorite, n.SubjectID, n.UpdatedAt,
	))
	if err != nil {
		if mapped := domainError(err, entities.ErrNoteNotFound); mapped != nil {
			log.Debug(ctx, "note update rejected", zap.Error(mapped))
			return nil, mapped
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return updated, nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}
	return nil
}
