// Package entities содержит сущности домена аутентификации.
package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"studymate/internal/shared"
)

// Ограничения полей пользователя.
const (
	MinFirstNameLength = 2
	MaxFirstNameLength = 50
	MaxLastNameLength  = 50
	MaxEmailLength     = 100
)

// Ошибки домена пользователя.
var (
	ErrEmptyUserID      = fmt.Errorf("%w: user ID cannot be empty", shared.ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", shared.ErrValidation)
	ErrInvalidFirstName = fmt.Errorf("%w: first name must be between %d and %d characters",
		shared.ErrValidation, MinFirstNameLength, MaxFirstNameLength)
	ErrLastNameTooLong = fmt.Errorf("%w: last name must be at most %d characters",
		shared.ErrValidation, MaxLastNameLength)
	ErrUserNotFound      = fmt.Errorf("%w: user", shared.ErrNotFound)
	ErrEmailAlreadyTaken = fmt.Errorf("%w: email is already registered", shared.ErrDuplicateEmail)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User - зарегистрированная учетная запись. ID - единственный якорь авторизации.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Active       bool
	RegisteredAt time.Time
}

// FullName возвращает имя и фамилию через пробел.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail приводит email к каноническому виду: без пробелов, в нижнем регистре.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет формат уже нормализованного email.
func ValidateEmail(email string) error {
	if email == "" || len(email) > MaxEmailLength || !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateNames проверяет имя и фамилию.
func ValidateNames(firstName, lastName string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(firstName))
	if n < MinFirstNameLength || n > MaxFirstNameLength {
		return ErrInvalidFirstName
	}
	if utf8.RuneCountInString(strings.TrimSpace(lastName)) > MaxLastNameLength {
		return ErrLastNameTooLong
	}
	return nil
}
