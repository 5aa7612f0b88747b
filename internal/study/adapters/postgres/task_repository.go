package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/repositories"
	"studymate/pkg/logger"
)

const taskColumns = `id, title, description, due_at, completed, priority, owner_id, subject_id, created_at`

// TaskRepository реализует repositories.TaskRepository.
type TaskRepository struct {
	pool PgxPoolInterface
}

// NewTaskRepository создает репозиторий задач.
func NewTaskRepository(pool PgxPoolInterface) repositories.TaskRepository {
	return &TaskRepository{pool: pool}
}

func scanTask(row pgx.Row) (*entities.Task, error) {
	var (
		t        entities.Task
		priority string
	)
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.DueAt,
		&t.Completed,
		&priority,
		&t.OwnerID,
		&t.SubjectID,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	t.Priority = entities.Priority(priority)
	return &t, nil
}

// Create сохраняет новую задачу.
func (r *TaskRepository) Create(ctx context.Context, t *entities.Task) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", "TaskRepository.Create"))
	log.Debug(ctx, "creating task", zap.String("ownerID", t.OwnerID))

	created, err := scanTask(r.pool.QueryRow(ctx,
		`INSERT INTO tasks (`+taskColumns+`)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING `+taskColumns,
		t.ID, t.Title, t.Description, t.DueAt, t.Completed, string(t.Priority), t.OwnerID, t.SubjectID, t.CreatedAt,
	))
	if err != nil {
		if mapped := domainError(err, entities.ErrTaskNotFound); mapped != nil {
			log.Debug(ctx, "task rejected by constraint", zap.Error(mapped))
			return nil, mapped
		}
		log.Error(ctx, "failed to create task", zap.Error(err))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// FindByID возвращает задачу независимо от владельца.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", "TaskRepository.FindByID"))

	t, err := scanTask(r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if mapped := domainError(err, entities.ErrTaskNotFound); mapped != nil {
			log.Debug(ctx, "task not found", zap.String("taskID", id))
			return nil, mapped
		}
		log.Error(ctx, "failed to get task", zap.Error(err))
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) list(ctx context.Context, method, where, orderBy string, args ...any) ([]*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", "TaskRepository."+method))

	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE `+where+` ORDER BY `+orderBy, args...)
	if err != nil {
		log.Error(ctx, "failed to list tasks", zap.Error(err))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks, err := collect(rows, scanTask)
	if err != nil {
		log.Error(ctx, "failed to read tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

const byCreation = `created_at, id`

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	return r.list(ctx, "ListByOwner", `owner_id = $1`, byCreation, ownerID)
}

func (r *TaskRepository) ListBySubject(ctx context.Context, ownerID, subjectID string) ([]*entities.Task, error) {
	return r.list(ctx, "ListBySubject", `owner_id = $1 AND subject_id = $2`, byCreation, ownerID, subjectID)
}

// ListGeneral возвращает задачи без предмета.
func (r *TaskRepository) ListGeneral(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	return r.list(ctx, "ListGeneral", `owner_id = $1 AND subject_id IS NULL`, byCreation, ownerID)
}

// ListPending возвращает невыполненные задачи.
func (r *TaskRepository) ListPending(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	return r.list(ctx, "ListPending", `owner_id = $1 AND NOT completed`, byCreation, ownerID)
}

// ListDueBefore возвращает невыполненные задачи со сроком не позже before, ближайшие первыми.
func (r *TaskRepository) ListDueBefore(ctx context.Context, ownerID string, before time.Time) ([]*entities.Task, error) {
	return r.list(ctx, "ListDueBefore", `owner_id = $1 AND NOT completed AND due_at <= $2`,
		`due_at, created_at, id`, ownerID, before)
}

// Update перезаписывает изменяемые поля задачи владельца.
func (r *TaskRepository) Update(ctx context.Context, t *entities.Task) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", "TaskRepository.Update"))
	log.Debug(ctx, "updating task", zap.String("taskID", t.ID))

	updated, err := scanTask(r.pool.QueryRow(ctx,
		`UPDATE tasks
         SET title = $3, description = $4, due_at = $5, completed = $6, priority = $7, subject_id = $8
         WHERE id = $1 AND owner_id = $2
         RETURNING `+taskColumns,
		t.ID, t.OwnerID, t.Title, t.Description, t.DueAt, t.Completed, string(t.Priority), t.SubjectID,
	))
	if err != nil {
		if mapped := domainError(err, entities.ErrTaskNotFound); mapped != nil {
			log.Debug(ctx, "task update rejected", zap.Error(mapped))
			return nil, mapped
		}
		log.Error(ctx, "failed to update task", zap.Error(err))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Delete удаляет задачу владельца.
func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("method", "TaskRepository.Delete"))
	log.Debug(ctx, "deleting task", zap.String("taskID", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		log.Error(ctx, "failed to delete task", zap.Error(err))
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}
	return nil
}
