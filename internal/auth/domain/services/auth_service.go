// Package services описывает доменные понятия аутентификации: результат входа, claims токена, ошибки.
package services

import (
	"fmt"
	"time"

	"studymate/internal/auth/domain/entities"
	"studymate/internal/shared"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", shared.ErrInvalidCredentials)
	ErrMissingCredential  = fmt.Errorf("%w: authorization header with Bearer token is required", shared.ErrMissingCredential)
	ErrUnknownUser        = fmt.Errorf("%w: token subject does not match an active user", shared.ErrUnknownUser)
	ErrRevokedToken       = fmt.Errorf("%w: token has been revoked", shared.ErrInvalidToken)
)

// AuthResult - итог регистрации или входа.
type AuthResult struct {
	User      *entities.User
	Token     string
	ExpiresAt time.Time
}
