package study

import (
	"github.com/gofiber/fiber/v3"

	"studymate/internal/gateway/app/dto"
	"studymate/internal/gateway/app/http/request"
	"studymate/internal/gateway/app/http/response"
)

const (
	MsgNotesListed = "Notas obtenidas correctamente"
	MsgNoteFound   = "Nota obtenida correctamente"
	MsgNoteCreated = "Nota creada exitosamente"
	MsgNoteUpdated = "Nota actualizada exitosamente"
	MsgNoteDeleted = "Nota eliminada exitosamente"

	keyNotes = "notas"
	keyNote  = "nota"

	queryTitle = "q"
)

// ListNotes возвращает заметки пользователя; параметр q ищет по заголовку.
func (h *Handler) ListNotes(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}

	notes, err := h.notes.SearchByTitle(ctx, c.Query(queryTitle), ownerID)
	return list(c, keyNotes, MsgNotesListed, notes, err, dto.NewNoteResponse)
}

// CreateNote создает заметку.
func (h *Handler) CreateNote(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}

	input, err := noteInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	note, err := h.notes.Create(ctx, input, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusCreated, MsgNoteCreated, fiber.Map{keyNote: dto.NewNoteResponse(note)})
}

// GetNote возвращает заметку по идентификатору.
func (h *Handler) GetNote(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	note, err := h.notes.GetByID(ctx, id, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgNoteFound, fiber.Map{keyNote: dto.NewNoteResponse(note)})
}

// UpdateNote обновляет заметку.
func (h *Handler) UpdateNote(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	input, err := noteInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	note, err := h.notes.Update(ctx, id, input, ownerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgNoteUpdated, fiber.Map{keyNote: dto.NewNoteResponse(note)})
}

// DeleteNote удаляет заметку.
func (h *Handler) DeleteNote(c fiber.Ctx) error {
	ctx, ownerID, err := owner(c)
	if err != nil {
		return response.Error(c, err)
	}
	id, err := request.UUIDParam(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.notes.Delete(ctx, id, ownerID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, MsgNoteDeleted, nil)
}
