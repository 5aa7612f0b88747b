package api

import (
	"context"

	"studymate/internal/auth/domain/entities"
)

// IdentityResolver превращает значение заголовка Authorization в пользователя.
// Выполняется один раз на запрос, до любой бизнес-логики.
type IdentityResolver interface {
	Resolve(ctx context.Context, authorizationHeader string) (*entities.User, error)
}
