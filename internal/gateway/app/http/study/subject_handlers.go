package study

import (
	"github.com/gofiber/fiber/v3"

	"studymate/internal/gateway/app/dto"
	"studymate/internal/gateway/app/http/request"
	"studymate/internal/gateway/app/http/response"
)

const (
	MsgSubjectsListed = "Materias obtenidas correctamente"
	MsgSubjectFound   = "Materia obtenida correctamente"
	MsgSubjectCreated = "Materia creada exitosamente"
	MsgSubjectUpdated = "Materia actualizada exitosamente"
	MsgSubjectDeleted = "Materia eliminada exitosamente"

	keySubjects = "materias"
	keySubject  = "materia"
)

// ListSubjects возвращает предметы пользователя.
func (h *Handler) ListSubjects(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	subjects, err := h.subjects.ListByOwner(ctx, ownerID)
	return list(c, keySubjects, MsgSubjectsListed, subjects, err, dto.NewSubjectResponse)
}

// CreateSubject создает предмет.
func (h *Handler) CreateSubject(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req dto.SubjectRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	subject, err := h.subjects.Create(ctx, req.ToInput(), ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusCreated, MsgSubjectCreated, fiber.Map{keySubject: dto.NewSubjectResponse(subject)})
}

// GetSubject возвращает предмет по идентификатору.
func (h *Handler) GetSubject(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	subject, err := h.subjects.GetByID(ctx, id, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgSubjectFound, fiber.Map{keySubject: dto.NewSubjectResponse(subject)})
}

// UpdateSubject обновляет предмет.
func (h *Handler) UpdateSubject(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req dto.SubjectRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	subject, err := h.subjects.Update(ctx, id, req.ToInput(), ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgSubjectUpdated, fiber.Map{keySubject: dto.NewSubjectResponse(subject)})
}

// DeleteSubject удаляет предмет; его заметки и задачи становятся общими.
func (h *Handler) DeleteSubject(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.subjects.Delete(ctx, id, ownerID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgSubjectDeleted, nil)
}

// ListSubjectNotes возвращает заметки предмета.
func (h *Handler) ListSubjectNotes(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	notes, err := h.notes.ListBySubject(ctx, id, ownerID)
	return list(c, keyNotes, MsgNotesListed, notes, err, dto.NewNoteResponse)
}

// ListSubjectTasks возвращает задачи предмета.
func (h *Handler) ListSubjectTasks(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	tasks, err := h.tasks.ListBySubject(ctx, id, ownerID)
	return list(c, keyTasks, MsgTasksListed, tasks, err, dto.NewTaskResponse)
}
