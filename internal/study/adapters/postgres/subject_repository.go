package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/repositories"
	pgutil "studymate/pkg/db/postgres"
	"studymate/pkg/logger"
)

const subjectColumns = `id, name, code, description, credits, color, professor, schedule, owner_id, active, created_at`

// SubjectRepository реализует repositories.SubjectRepository.
type SubjectRepository struct {
	pool PgxPoolInterface
}

// NewSubjectRepository создает репозиторий предметов.
func NewSubjectRepository(pool PgxPoolInterface) repositories.SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func scanSubject(row pgx.Row) (*entities.Subject, error) {
	var s entities.Subject
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Code,
		&s.Description,
		&s.Credits,
		&s.Color,
		&s.Professor,
		&s.Schedule,
		&s.OwnerID,
		&s.Active,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func subjectWriteError(err error) error {
	if _, ok := pgutil.IsUniqueViolation(err); ok {
		return entities.ErrSubjectNameTaken
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ErrSubjectNotFound
	}
	return nil
}

// Create сохраняет новый предмет.
func (r *SubjectRepository) Create(ctx context.Context, s *entities.Subject) (*entities.Subject, error) {
	log := logger.Log(ctx).With(zap.String("method", "SubjectRepository.Create"))
	log.Debug(ctx, "creating subject", zap.String("ownerID", s.OwnerID))

	created, err := scanSubject(r.pool.QueryRow(ctx,
		`INSERT INTO subjects (`+subjectColumns+`)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
         RETURNING `+subjectColumns,
		s.ID, s.Name, s.Code, s.Description, s.Credits, s.Color,
		s.Professor, s.Schedule, s.OwnerID, s.Active, s.CreatedAt,
	))
	if err != nil {
		if mapped := subjectWriteError(err); mapped != nil {
			log.Debug(ctx, "subject rejected by constraint", zap.Error(mapped))
			return nil, mapped
		}
		log.Error(ctx, "failed to create subject", zap.Error(err))
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	return created, nil
}

// FindByID возвращает предмет независимо от владельца.
func (r *SubjectRepository) FindByID(ctx context.Context, id string) (*entities.Subject, error) {
	log := logger.Log(ctx).With(zap.String("method", "SubjectRepository.FindByID"))

	s, err := scanSubject(r.pool.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "subject not found", zap.String("subjectID", id))
			return nil, entities.ErrSubjectNotFound
		}
		log.Error(ctx, "failed to get subject", zap.Error(err))
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return s, nil
}

// ListByOwner возвращает предметы владельца в порядке создания.
func (r *SubjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Subject, error) {
	log := logger.Log(ctx).With(zap.String("method", "SubjectRepository.ListByOwner"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		log.Error(ctx, "failed to list subjects", zap.Error(err))
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	subjects, err := collect(rows, scanSubject)
	if err != nil {
		log.Error(ctx, "failed to read subjects", zap.Error(err))
		return nil, err
	}
	return subjects, nil
}

// Update перезаписывает изменяемые поля предмета владельца.
func (r *SubjectRepository) Update(ctx context.Context, s *entities.Subject) (*entities.Subject, error) {
	log := logger.Log(ctx).With(zap.String("method", "SubjectRepository.Update"))
	log.Debug(ctx, "updating subject", zap.String("subjectID", s.ID))

	updated, err := scanSubject(r.pool.QueryRow(ctx,
		`UPDATE subjects
         SET name = $3, code = $4, description = $5, credits = $6, color = $7,
             professor = $8, schedule = $9, active = $10
         WHERE id = $1 AND owner_id = $2
         RETURNING `+subjectColumns,
		s.ID, s.OwnerID, s.Name, s.Code, s.Description, s.Credits, s.Color,
		s.Professor, s.Schedule, s.Active,
	))
	if err != nil {
		if mapped := subjectWriteError(err); mapped != nil {
			log.Debug(ctx, "subject update rejected", zap.Error(mapped))
			return nil, mapped
		}
		log.Error(ctx, "failed to update subject", zap.Error(err))
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}
	return updated, nil
}

// Delete удаляет предмет; заметки и задачи отвязываются внешним ключом ON DELETE SET NULL.
func (r *SubjectRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("method", "SubjectRepository.Delete"))
	log.Debug(ctx, "deleting subject", zap.String("subjectID", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		log.Error(ctx, "failed to delete subject", zap.Error(err))
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrSubjectNotFound
	}
	return nil
}

// ExistsByName проверяет имя без учета регистра среди предметов владельца, кроме excludeID.
func (r *SubjectRepository) ExistsByName(ctx context.Context, ownerID, name, excludeID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "SubjectRepository.ExistsByName"))

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
             SELECT 1 FROM subjects
             WHERE owner_id = $1 AND lower(name) = lower($2) AND id::text <> $3
         )`,
		ownerID, name, excludeID,
	).Scan(&exists)
	if err != nil {
		log.Error(ctx, "failed to check subject name", zap.Error(err))
		return false, fmt.Errorf("failed to check subject name: %w", err)
	}
	return exists, nil
}
