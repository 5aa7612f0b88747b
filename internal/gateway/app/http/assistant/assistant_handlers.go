// Package assistant содержит HTTP обработчики учебного ассистента.
package assistant

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"studymate/internal/assistant/ports/api"
	"studymate/internal/gateway/app/dto"
	"studymate/internal/gateway/app/http/middleware"
	"studymate/internal/gateway/app/http/request"
	"studymate/internal/gateway/app/http/response"
	"studymate/pkg/logger"
)

const (
	LogHandlerChat      = "assistant handler: chat"
	LogHandlerStudyPlan = "assistant handler: study plan"
	LogHandlerSummarize = "assistant handler: summarize"

	logRequestFailed = "assistant request failed"
)

// Handler содержит HTTP обработчики ассистента.
type Handler struct {
	assistant api.AssistantUseCase
}

// NewHandler создает обработчики ассистента.
func NewHandler(assistant api.AssistantUseCase) *Handler {
	return &Handler{assistant: assistant}
}

// Chat отвечает на вопрос пользователя.
func (h *Handler) Chat(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerChat)

	var req dto.ChatRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.assistant.Chat(requestCtx, req.Pregunta, req.Contexto)
	if err != nil {
		log.Debug(requestCtx, logRequestFailed, zap.Error(err))
		return response.Error(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewChatResponse(reply))
}

// StudyPlan строит план занятий по списку предметов и доступным часам.
func (h *Handler) StudyPlan(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerStudyPlan)

	var req dto.StudyPlanRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	plan, err := h.assistant.StudyPlan(requestCtx, req.Materias, req.HorasDisponibles)
	if err != nil {
		log.Debug(requestCtx, logRequestFailed, zap.Error(err))
		return response.Error(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewStudyPlanResponse(plan))
}

// Summarize делает конспект уже извлеченного текста документа.
func (h *Handler) Summarize(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerSummarize)

	var req dto.SummaryRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	summary, err := h.assistant.Summarize(requestCtx, req.Contenido)
	if err != nil {
		log.Debug(requestCtx, logRequestFailed, zap.Error(err))
		return response.Error(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewSummaryResponse(summary))
}

// Health сообщает состояние функций ассистента.
func (h *Handler) Health(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.NewHealthResponse(h.assistant.Health(middleware.RequestContext(c))))
}
