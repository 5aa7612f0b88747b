// Package response формирует JSON-ответы API и сопоставляет ошибки со статусами HTTP.
package response

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"studymate/internal/gateway/app/http/middleware"
	"studymate/internal/shared"
	"studymate/pkg/logger"
)

// Значения поля status.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

const internalMessage = "internal server error"

var statusByCode = map[string]int{
	shared.CodeValidation:         fiber.StatusBadRequest,
	shared.CodeMissingCredential:  fiber.StatusUnauthorized,
	shared.CodeInvalidToken:       fiber.StatusUnauthorized,
	shared.CodeUnknownUser:        fiber.StatusUnauthorized,
	shared.CodeInvalidCredentials: fiber.StatusUnauthorized,
	shared.CodeNotFound:           fiber.StatusNotFound,
	shared.CodeForbidden:          fiber.StatusForbidden,
	shared.CodeForeignOwnership:   fiber.StatusForbidden,
	shared.CodeDuplicateEmail:     fiber.StatusBadRequest,
	shared.CodeDuplicateName:      fiber.StatusConflict,
	shared.CodeExternalService:    fiber.StatusBadGateway,
	shared.CodeNotConfigured:      fiber.StatusServiceUnavailable,
	shared.CodeInternal:           fiber.StatusInternalServerError,
}

// ErrorBody - тело ответа с ошибкой.
type ErrorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Status возвращает HTTP-статус для ошибки.
func Status(err error) int {
	return statusByCode[shared.Code(err)]
}

// Error пишет ответ с ошибкой; внутренние ошибки логируются и не раскрываются клиенту.
func Error(c fiber.Ctx, err error) error {
	return ErrorWithStatus(c, Status(err), err)
}

// ErrorWithStatus пишет ответ с ошибкой и явным статусом.
func ErrorWithStatus(c fiber.Ctx, status int, err error) error {
	requestCtx := middleware.RequestContext(c)
	code := shared.Code(err)

	message := shared.Message(err)
	if code == shared.CodeInternal {
		logger.Log(requestCtx).Error(requestCtx, "request failed with internal error", zap.Error(err))
		message = internalMessage
	}

	return c.Status(status).JSON(ErrorBody{Status: StatusError, Code: code, Message: message})
}

// Success пишет успешный ответ: поля body дополняются status и, если задано, message.
func Success(c fiber.Ctx, status int, message string, body fiber.Map) error {
	payload := fiber.Map{"status": StatusSuccess}
	if message != "" {
		payload["message"] = message
	}
	for k, v := range body {
		payload[k] = v
	}
	return c.Status(status).JSON(payload)
}

// ErrorHandler обрабатывает ошибки, не перехваченные обработчиками: неизвестные маршруты,
// превышение лимита тела и прочие *fiber.Error.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := shared.CodeInternal
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			code = shared.CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusMethodNotAllowed,
			fiber.StatusUnsupportedMediaType:
			code = shared.CodeValidation
		}
		return c.Status(fiberErr.Code).JSON(ErrorBody{Status: StatusError, Code: code, Message: fiberErr.Message})
	}
	return Error(c, err)
}
