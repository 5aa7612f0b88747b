// Package study содержит HTTP обработчики предметов, заметок и задач.
// Все маршруты требуют auth middleware: владелец берется из разрешенной личности.
package study

import (
	"context"

	"github.com/gofiber/fiber/v3"

	authsvc "studymate/internal/auth/domain/services"
	"studymate/internal/gateway/app/dto"
	"studymate/internal/gateway/app/http/middleware"
	"studymate/internal/gateway/app/http/request"
	"studymate/internal/gateway/app/http/response"
	"studymate/internal/study/ports/api"
)

// Handler содержит HTTP обработчики учебных сущностей.
type Handler struct {
	subjects api.SubjectUseCase
	notes    api.NoteUseCase
	tasks    api.TaskUseCase
}

// NewHandler создает обработчики учебных сущностей.
func NewHandler(subjects api.SubjectUseCase, notes api.NoteUseCase, tasks api.TaskUseCase) *Handler {
	return &Handler{subjects: subjects, notes: notes, tasks: tasks}
}

func owner(c fiber.Ctx) (context.Context, string, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, "", authsvc.ErrMissingCredential
	}
	return middleware.RequestContext(c), user.ID, nil
}

func list[E, R any](c fiber.Ctx, key, message string, items []E, err error, convert func(E) R) error {
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fiber.StatusOK, message, fiber.Map{key: mapAll(items, convert)})
}

func mapAll[E, R any](items []E, convert func(E) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, convert(item))
	}
	return result
}

func noteInput(c fiber.Ctx) (api.NoteInput, error) {
	var req dto.NoteRequest
	if err := request.Body(c, &req); err != nil {
		return api.NoteInput{}, err
	}
	return req.ToInput()
}

func taskInput(c fiber.Ctx) (api.TaskInput, error) {
	var req dto.TaskRequest
	if err := request.Body(c, &req); err != nil {
		return api.TaskInput{}, err
	}
	return req.ToInput()
}
