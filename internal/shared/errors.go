// Package shared содержит виды ошибок, общие для всех слоев сервиса.
// Доменные пакеты оборачивают их в свои sentinel-ошибки, транспорт сопоставляет их через errors.Is.
package shared

import (
	"errors"
	"strings"
)

var (
	// запрос
	ErrValidation = errors.New("validation error")

	// аутентификация
	ErrMissingCredential  = errors.New("missing credential")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// доступ к сущностям
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrForeignOwnership = errors.New("referenced entity belongs to another user")

	// уникальность
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrDuplicateName  = errors.New("duplicate name")

	// внешние зависимости
	ErrExternalService = errors.New("external service error")
	ErrNotConfigured   = errors.New("feature not configured")
)

// Коды ошибок в ответах API.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeMissingCredential  = "MISSING_CREDENTIAL"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUnknownUser        = "UNKNOWN_USER"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeForeignOwnership   = "FOREIGN_OWNERSHIP"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeDuplicateName      = "DUPLICATE_NAME"
	CodeExternalService    = "EXTERNAL_SERVICE_ERROR"
	CodeNotConfigured      = "NOT_CONFIGURED"
	CodeInternal           = "INTERNAL_ERROR"
)

var kinds = []struct {
	err  error
	code string
}{
	{ErrValidation, CodeValidation},
	{ErrMissingCredential, CodeMissingCredential},
	{ErrInvalidToken, CodeInvalidToken},
	{ErrUnknownUser, CodeUnknownUser},
	{ErrInvalidCredentials, CodeInvalidCredentials},
	{ErrForeignOwnership, CodeForeignOwnership},
	{ErrForbidden, CodeForbidden},
	{ErrNotFound, CodeNotFound},
	{ErrDuplicateEmail, CodeDuplicateEmail},
	{ErrDuplicateName, CodeDuplicateName},
	{ErrExternalService, CodeExternalService},
	{ErrNotConfigured, CodeNotConfigured},
}

// Code возвращает код вида ошибки; для неизвестных ошибок - CodeInternal.
func Code(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return CodeInternal
}

// Message возвращает текст ошибки, начиная с первого вхождения ее вида:
// контекст оборачивания перед видом отбрасывается, сам вид убирается.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()

	cut := -1
	var kindText string
	for _, k := range kinds {
		text := k.err.Error()
		if idx := strings.Index(msg, text); idx >= 0 && (cut < 0 || idx < cut) {
			cut, kindText = idx, text
		}
	}
	if cut < 0 {
		return msg
	}

	rest := msg[cut+len(kindText):]
	if after, ok := strings.CutPrefix(rest, ": "); ok && after != "" {
		return after
	}
	return kindText
}
