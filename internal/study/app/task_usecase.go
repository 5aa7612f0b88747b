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
	errCtxCreatingTask = "creating task"
	errCtxGettingTask  = "getting task"
	errCtxListingTasks = "listing tasks"
	errCtxUpdatingTask = "updating task"
	errCtxDeletingTask = "deleting task"
)

// TaskUseCaseImpl реализует api.TaskUseCase.
type TaskUseCaseImpl struct {
	base
	tasks    repositories.TaskRepository
	subjects repositories.SubjectRepository
}

// NewTaskUseCase создает сценарии задач.
func NewTaskUseCase(
	tasks repositories.TaskRepository, subjects repositories.SubjectRepository, opts ...Option,
) api.TaskUseCase {
	return &TaskUseCaseImpl{base: newBase(opts), tasks: tasks, subjects: subjects}
}

func applyTaskInput(t *entities.Task, input api.TaskInput) {
	t.Title = input.Title
	t.Description = input.Description
	t.DueAt = input.DueAt
	t.Priority = input.Priority
	t.SubjectID = input.SubjectID
	if input.Completed != nil {
		t.Completed = *input.Completed
	}
}

// Create сохраняет задачу; приоритет по умолчанию MEDIUM.
func (uc *TaskUseCaseImpl) Create(ctx context.Context, input api.TaskInput, ownerID string) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", "TaskUseCase.Create"), zap.String("ownerID", ownerID))

	task := &entities.Task{ID: uc.newID(), OwnerID: ownerID, CreatedAt: uc.now()}
	applyTaskInput(task, input)
	if err := task.Normalize(); err != nil {
		log.Debug(ctx, "invalid task", zap.Error(err))
		return nil, err
	}
	if err := resolveSubject(ctx, uc.subjects, task.SubjectID, ownerID); err != nil {
		log.Debug(ctx, "subject reference rejected", zap.Error(err))
		return nil, wrap(errCtxCreatingTask, err)
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, wrap(errCtxCreatingTask, err)
	}

	log.Info(ctx, "task created", zap.String("taskID", created.ID))
	return created, nil
}

func (uc *TaskUseCaseImpl) GetByID(ctx context.Context, id, ownerID string) (*entities.Task, error) {
	task, err := loadOwned[*entities.Task](ctx, uc.tasks, id, ownerID, entities.ErrTaskForbidden)
	if err != nil {
		return nil, wrap(errCtxGettingTask, err)
	}
	return task, nil
}

func (uc *TaskUseCaseImpl) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	return uc.list(uc.tasks.ListByOwner(ctx, ownerID))
}

// ListBySubject возвращает задачи предмета, принадлежащего владельцу.
func (uc *TaskUseCaseImpl) ListBySubject(ctx context.Context, subjectID, ownerID string) ([]*entities.Task, error) {
	if _, err := loadOwned[*entities.Subject](ctx, uc.subjects, subjectID, ownerID, entities.ErrSubjectForbidden); err != nil {
		return nil, wrap(errCtxGettingSubject, err)
	}
	return uc.list(uc.tasks.ListBySubject(ctx, ownerID, subjectID))
}

// ListGeneral возвращает задачи без предмета.
func (uc *TaskUseCaseImpl) ListGeneral(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	return uc.list(uc.tasks.ListGeneral(ctx, ownerID))
}

func (uc *TaskUseCaseImpl) ListPending(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	return uc.list(uc.tasks.ListPending(ctx, ownerID))
}

// ListUrgent возвращает невыполненные задачи со сроком в пределах entities.UrgentWindow.
// Задачи без срока не попадают в список.
func (uc *TaskUseCaseImpl) ListUrgent(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	return uc.list(uc.tasks.ListDueBefore(ctx, ownerID, uc.now().Add(entities.UrgentWindow)))
}

func (uc *TaskUseCaseImpl) list(tasks []*entities.Task, err error) ([]*entities.Task, error) {
	if err != nil {
		return nil, wrap(errCtxListingTasks, err)
	}
	return tasks, nil
}

// Update заменяет изменяемые поля; Completed == nil сохраняет текущее значение.
func (uc *TaskUseCaseImpl) Update(ctx context.Context, id string, input api.TaskInput, ownerID string) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", "TaskUseCase.Update"), zap.String("taskID", id))

	task, err := loadOwned[*entities.Task](ctx, uc.tasks, id, ownerID, entities.ErrTaskForbidden)
	if err != nil {
		return nil, wrap(errCtxGettingTask, err)
	}

	applyTaskInput(task, input)
	if err := task.Normalize(); err != nil {
		return nil, err
	}
	if err := resolveSubject(ctx, uc.subjects, task.SubjectID, ownerID); err != nil {
		return nil, wrap(errCtxUpdatingTask, err)
	}

	updated, err := uc.tasks.Update(ctx, task)
	if err != nil {
		return nil, wrap(errCtxUpdatingTask, err)
	}

	log.Info(ctx, "task updated")
	return updated, nil
}

// MarkComplete отмечает задачу выполненной; повторный вызов ничего не меняет.
func (uc *TaskUseCaseImpl) MarkComplete(ctx context.Context, id, ownerID string) (*entities.Task, error) {
	task, err := loadOwned[*entities.Task](ctx, uc.tasks, id, ownerID, entities.ErrTaskForbidden)
	if err != nil {
		return nil, wrap(errCtxGettingTask, err)
	}
	if task.Completed {
		return task, nil
	}

	task.Completed = true
	updated, err := uc.tasks.Update(ctx, task)
	if err != nil {
		return nil, wrap(errCtxUpdatingTask, err)
	}

	logger.Log(ctx).Info(ctx, "task completed", zap.String("taskID", id))
	return updated, nil
}

func (uc *TaskUseCaseImpl) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := loadOwned[*entities.Task](ctx, uc.tasks, id, ownerID, entities.ErrTaskForbidden); err != nil {
		return wrap(errCtxGettingTask, err)
	}
	if err := uc.tasks.Delete(ctx, id, ownerID); err != nil {
		return wrap(errCtxDeletingTask, err)
	}

	logger.Log(ctx).Info(ctx, "task deleted", zap.String("taskID", id))
	return nil
}
