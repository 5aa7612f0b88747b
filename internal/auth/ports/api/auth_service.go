package api

import (
	"context"

	"studymate/internal/auth/domain/services"
)

// RegisterInput - данные регистрации.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthUseCase - сценарии регистрации, входа и выхода.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*services.AuthResult, error)

	Login(ctx context.Context, email, password string) (*services.AuthResult, error)

	Logout(ctx context.Context, token string) error
}
