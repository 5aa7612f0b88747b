package api

import (
	"context"

	"studymate/internal/auth/domain/entities"
)

// ProfileInput - изменяемые поля профиля. Nil пароль оставляет прежний.
// Email не меняется: он является субъектом выпущенных токенов.
type ProfileInput struct {
	FirstName string
	LastName  string
	Password  *string
}

// UserUseCase - операции над профилем пользователя.
type UserUseCase interface {
	GetUserProfile(ctx context.Context, userID string) (*entities.User, error)

	UpdateProfile(ctx context.Context, userID string, input ProfileInput) (*entities.User, error)

	// Deactivate снимает признак активности; токены пользователя перестают разрешаться.
	Deactivate(ctx context.Context, userID string) error
}
