package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"studymate/internal/auth/ports/api"
	"studymate/pkg/logger"
)

// ErrorResponder пишет ответ с ошибкой.
type ErrorResponder func(c fiber.Ctx, err error) error

// NewAuthMiddleware разрешает личность по заголовку Authorization один раз на запрос
// и сохраняет пользователя для обработчиков.
func NewAuthMiddleware(resolver api.IdentityResolver, respond ErrorResponder) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := RequestContext(c)

		user, err := resolver.Resolve(requestCtx, c.Get(fiber.HeaderAuthorization))
		if err != nil {
			logger.Log(requestCtx).Debug(requestCtx, "request not authenticated", zap.Error(err))
			return respond(c, err)
		}

		c.Locals(localsUser, user)
		setRequestContext(c, logger.NewContext(requestCtx,
			logger.Log(requestCtx).With(zap.String("userID", user.ID))))
		return c.Next()
	}
}
