package middleware

import (
	"github.com/gofiber/fiber/v3"

	"studymate/pkg/logger"
)

// NewRequestIDMiddleware берет идентификатор из заголовка X-Request-ID или генерирует новый
// и возвращает его в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := logger.NewRequestIDContext(c.Context(), c.Get(logger.HeaderRequestID))
		requestID, _ := logger.GetRequestID(ctx)

		c.Set(logger.HeaderRequestID, requestID)
		setRequestContext(c, ctx)
		return c.Next()
	}
}
