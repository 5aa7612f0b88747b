// Package entities содержит учебные сущности: предметы, заметки и задачи.
// Каждая сущность принадлежит ровно одному пользователю.
package entities

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"studymate/internal/shared"
)

// Owned - сущность с владельцем.
type Owned interface {
	GetID() string
	GetOwnerID() string
}

var colorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ErrInvalidColor возвращается для цвета не в формате #RRGGBB.
var ErrInvalidColor = fmt.Errorf("%w: color must be in #RRGGBB format", shared.ErrValidation)

func normalizeColor(color, fallback string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return fallback, nil
	}
	if !colorRegex.MatchString(color) {
		return "", ErrInvalidColor
	}
	return strings.ToLower(color), nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
