package entities

import (
	"fmt"
	"strings"

	"studymate/internal/shared"
)

// Priority - приоритет задачи.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ErrInvalidPriority возвращается для неизвестного приоритета.
var ErrInvalidPriority = fmt.Errorf("%w: priority must be one of LOW, MEDIUM, HIGH, URGENT", shared.ErrValidation)

var priorityAliases = map[string]Priority{
	"LOW":     PriorityLow,
	"BAJA":    PriorityLow,
	"MEDIUM":  PriorityMedium,
	"MEDIA":   PriorityMedium,
	"HIGH":    PriorityHigh,
	"ALTA":    PriorityHigh,
	"URGENT":  PriorityUrgent,
	"URGENTE": PriorityUrgent,
}

// ParsePriority разбирает приоритет без учета регистра; пустая строка дает MEDIUM.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return PriorityMedium, nil
	}
	p, ok := priorityAliases[s]
	if !ok {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Valid сообщает, является ли значение каноническим приоритетом.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
