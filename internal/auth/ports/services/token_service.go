package services

import (
	"context"
	"time"

	"studymate/internal/auth/domain/services"
)

// TokenService выпускает и проверяет подписанные токены с email в качестве subject.
type TokenService interface {
	Issue(ctx context.Context, identity string) (string, time.Time, error)

	Validate(ctx context.Context, token, identity string) bool

	ExtractIdentity(ctx context.Context, token string) (string, error)

	Parse(ctx context.Context, token string) (*services.Claims, error)
}
