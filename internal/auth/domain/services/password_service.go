package services

import (
	"errors"
	"fmt"

	"studymate/internal/shared"
)

// Ограничения длины пароля.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 100
)

// Ошибки паролей.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = fmt.Errorf("%w: password must be between %d and %d characters",
		shared.ErrValidation, MinPasswordLength, MaxPasswordLength)
)

// ValidatePassword проверяет длину пароля.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}
