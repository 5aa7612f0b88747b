// Package dto содержит объекты передачи данных HTTP API и их преобразование в доменные типы.
package dto

import (
	"time"

	"studymate/internal/auth/domain/entities"
	"studymate/internal/auth/domain/services"
	"studymate/internal/auth/ports/api"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToInput преобразует запрос в данные сценария регистрации.
func (r RegisterRequest) ToInput() api.RegisterInput {
	return api.RegisterInput{
		FirstName: r.Nombre,
		LastName:  r.Apellido,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest - новые имя, фамилия и, при необходимости, пароль.
type UpdateProfileRequest struct {
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Password *string `json:"password"`
}

func (r UpdateProfileRequest) ToInput() api.ProfileInput {
	return api.ProfileInput{
		FirstName: r.Nombre,
		LastName:  r.Apellido,
		Password:  r.Password,
	}
}

// UserResponse - публичный профиль пользователя.
type UserResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	FechaRegistro time.Time `json:"fechaRegistro"`
	Activo        bool      `json:"activo"`
}

// NewUserResponse строит профиль без хэша пароля.
func NewUserResponse(u *entities.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Nombre:        u.FirstName,
		Apellido:      u.LastName,
		Email:         u.Email,
		FechaRegistro: u.RegisteredAt,
		Activo:        u.Active,
	}
}

// TokenResponse - токен и профиль после регистрации или входа.
type TokenResponse struct {
	Status    string       `json:"status"`
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	Type      string       `json:"tipo"`
	ExpiresAt time.Time    `json:"expires_at"`
	Usuario   UserResponse `json:"usuario"`
}

// NewTokenResponse строит ответ с токеном.
func NewTokenResponse(status, message string, result *services.AuthResult) TokenResponse {
	return TokenResponse{
		Status:    status,
		Message:   message,
		Token:     result.Token,
		Type:      "Bearer",
		ExpiresAt: result.ExpiresAt,
		Usuario:   NewUserResponse(result.User),
	}
}
