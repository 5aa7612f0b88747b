package study

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"studymate/internal/gateway/app/dto"
	"studymate/internal/gateway/app/http/request"
	"studymate/internal/gateway/app/http/response"
	"studymate/internal/study/domain/entities"
)

const (
	MsgTasksListed   = "Tareas obtenidas correctamente"
	MsgTaskFound     = "Tarea obtenida correctamente"
	MsgTaskCreated   = "Tarea creada exitosamente"
	MsgTaskUpdated   = "Tarea actualizada exitosamente"
	MsgTaskCompleted = "Tarea completada exitosamente"
	MsgTaskDeleted   = "Tarea eliminada exitosamente"

	keyTasks = "tareas"
	keyTask  = "tarea"
)

type taskLister func(ctx context.Context, ownerID string) ([]*entities.Task, error)

func (h *Handler) listTasks(c fiber.Ctx, fetch taskLister) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	tasks, err := fetch(ctx, ownerID)
	return list(c, keyTasks, MsgTasksListed, tasks, err, dto.NewTaskResponse)
}

// ListTasks возвращает все задачи пользователя.
func (h *Handler) ListTasks(c fiber.Ctx) error { return h.listTasks(c, h.tasks.ListByOwner) }

// ListUrgentTasks возвращает незавершенные задачи со сроком в ближайшие три дня.
func (h *Handler) ListUrgentTasks(c fiber.Ctx) error { return h.listTasks(c, h.tasks.ListUrgent) }

// ListPendingTasks возвращает незавершенные задачи.
func (h *Handler) ListPendingTasks(c fiber.Ctx) error { return h.listTasks(c, h.tasks.ListPending) }

// ListGeneralTasks возвращает задачи без предмета.
func (h *Handler) ListGeneralTasks(c fiber.Ctx) error { return h.listTasks(c, h.tasks.ListGeneral) }

// CreateTask создает задачу.
func (h *Handler) CreateTask(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}

	input, err := taskInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	task, err := h.tasks.Create(ctx, input, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusCreated, MsgTaskCreated, fiber.Map{keyTask: dto.NewTaskResponse(task)})
}

// GetTask возвращает задачу по идентификатору.
func (h *Handler) GetTask(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	task, err := h.tasks.GetByID(ctx, id, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgTaskFound, fiber.Map{keyTask: dto.NewTaskResponse(task)})
}

// UpdateTask обновляет задачу.
func (h *Handler) UpdateTask(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	input, err := taskInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	task, err := h.tasks.Update(ctx, id, input, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgTaskUpdated, fiber.Map{keyTask: dto.NewTaskResponse(task)})
}

// CompleteTask отмечает задачу выполненной.
func (h *Handler) CompleteTask(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	task, err := h.tasks.MarkComplete(ctx, id, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgTaskCompleted, fiber.Map{keyTask: dto.NewTaskResponse(task)})
}

// DeleteTask удаляет задачу.
func (h *Handler) DeleteTask(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.tasks.Delete(ctx, id, ownerID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgTaskDeleted, nil)
}
