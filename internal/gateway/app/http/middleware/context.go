// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"studymate/internal/auth/domain/entities"
)

const (
	localsRequestContext = "requestContext"
	localsUser           = "user"
)

// RequestContext возвращает контекст запроса с идентификатором запроса и логгером.
func RequestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(localsRequestContext).(context.Context); ok {
		return ctx
	}
	return c.Context()
}

func setRequestContext(c fiber.Ctx, ctx context.Context) {
	c.Locals(localsRequestContext, ctx)
}

// CurrentUser возвращает пользователя, разрешенного NewAuthMiddleware.
func CurrentUser(c fiber.Ctx) (*entities.User, bool) {
	user, ok := c.Locals(localsUser).(*entities.User)
	return user, ok && user != nil
}
