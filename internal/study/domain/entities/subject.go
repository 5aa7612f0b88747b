package entities

import (
	"fmt"
	"strings"
	"time"

	"studymate/internal/shared"
)

// Ограничения предмета.
const (
	MinSubjectNameLength = 2
	MaxSubjectNameLength = 100
	MaxSubjectCodeLength = 20
	MaxProfessorLength   = 100
	MaxScheduleLength    = 200
	DefaultSubjectColor  = "#007bff"
)

// Ошибки предмета.
var (
	ErrInvalidSubjectName = fmt.Errorf("%w: subject name must be between %d and %d characters",
		shared.ErrValidation, MinSubjectNameLength, MaxSubjectNameLength)
	ErrSubjectCodeTooLong = fmt.Errorf("%w: subject code must be at most %d characters",
		shared.ErrValidation, MaxSubjectCodeLength)
	ErrNegativeCredits  = fmt.Errorf("%w: credits cannot be negative", shared.ErrValidation)
	ErrProfessorTooLong = fmt.Errorf("%w: professor must be at most %d characters", shared.ErrValidation, MaxProfessorLength)
	ErrScheduleTooLong  = fmt.Errorf("%w: schedule must be at most %d characters", shared.ErrValidation, MaxScheduleLength)
	ErrSubjectNotFound  = fmt.Errorf("%w: subject", shared.ErrNotFound)
	ErrSubjectForbidden = fmt.Errorf("%w: subject belongs to another user", shared.ErrForbidden)
	ErrSubjectNameTaken = fmt.Errorf("%w: a subject with this name already exists", shared.ErrDuplicateName)
	ErrForeignSubject   = fmt.Errorf("%w: subject", shared.ErrForeignOwnership)
)

// Subject - учебный предмет (materia).
type Subject struct {
	ID          string
	Name        string
	Code        *string
	Description *string
	Credits     *int
	Color       string
	Professor   *string
	Schedule    *string
	OwnerID     string
	Active      bool
	CreatedAt   time.Time
}

func (s *Subject) GetID() string      { return s.ID }
func (s *Subject) GetOwnerID() string { return s.OwnerID }

// Clone возвращает независимую копию.
func (s *Subject) Clone() *Subject {
	c := *s
	c.Code = cloneString(s.Code)
	c.Description = cloneString(s.Description)
	c.Professor = cloneString(s.Professor)
	c.Schedule = cloneString(s.Schedule)
	if s.Credits != nil {
		v := *s.Credits
		c.Credits = &v
	}
	return &c
}

// Normalize обрезает пробелы, подставляет значения по умолчанию и проверяет поля.
func (s *Subject) Normalize() error {
	s.Name = strings.TrimSpace(s.Name)
	if n := runeLen(s.Name); n < MinSubjectNameLength || n > MaxSubjectNameLength {
		return ErrInvalidSubjectName
	}

	s.Code = trimOptional(s.Code)
	if s.Code != nil && runeLen(*s.Code) > MaxSubjectCodeLength {
		return ErrSubjectCodeTooLong
	}
	s.Description = trimOptional(s.Description)
	s.Professor = trimOptional(s.Professor)
	if s.Professor != nil && runeLen(*s.Professor) > MaxProfessorLength {
		return ErrProfessorTooLong
	}
	s.Schedule = trimOptional(s.Schedule)
	if s.Schedule != nil && runeLen(*s.Schedule) > MaxScheduleLength {
		return ErrScheduleTooLong
	}
	if s.Credits != nil && *s.Credits < 0 {
		return ErrNegativeCredits
	}

	color, err := normalizeColor(s.Color, DefaultSubjectColor)
	if err != nil {
		return err
	}
	s.Color = color
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
