// Package entities описывает запросы и ответы учебного ассистента.
package entities

import (
	"fmt"
	"time"

	"studymate/internal/shared"
)

// Ошибки валидации запросов ассистента.
var (
	ErrEmptyQuestion = fmt.Errorf("%w: La pregunta es obligatoria", shared.ErrValidation)
	ErrNoSubjects    = fmt.Errorf("%w: Las materias son obligatorias", shared.ErrValidation)
	ErrInvalidHours  = fmt.Errorf("%w: Las horas disponibles deben ser mayores a 0", shared.ErrValidation)
	ErrEmptyContent  = fmt.Errorf("%w: El contenido del PDF es obligatorio", shared.ErrValidation)
)

// ChatReply - ответ чат-бота.
type ChatReply struct {
	Answer    string
	Question  string
	Context   string
	Model     string
	CreatedAt time.Time
}

// StudyPlan - сгенерированный недельный план.
type StudyPlan struct {
	Plan      string
	Subjects  []string
	Hours     int
	Model     string
	CreatedAt time.Time
}

// Summary - конспект присланного текста.
type Summary struct {
	Summary   string
	Original  string
	Model     string
	CreatedAt time.Time
}

// Health - состояние функций ассистента.
type Health struct {
	Status     string
	Services   []string
	Configured bool
	Circuit    string
	CheckedAt  time.Time
}
