package entities

import (
	"fmt"
	"strings"
	"time"

	"studymate/internal/shared"
)

// Ограничения задачи.
const (
	MaxTaskTitleLength = 200
	UrgentWindow       = 72 * time.Hour
)

// Ошибки задачи.
var (
	ErrEmptyTaskTitle = fmt.Errorf("%w: task title is required", shared.ErrValidation)
	ErrTaskTitleLong  = fmt.Errorf("%w: task title must be at most %d characters", shared.ErrValidation, MaxTaskTitleLength)
	ErrTaskNotFound   = fmt.Errorf("%w: task", shared.ErrNotFound)
	ErrTaskForbidden  = fmt.Errorf("%w: task belongs to another user", shared.ErrForbidden)
)

// Task - задача (tarea) со сроком и приоритетом.
type Task struct {
	ID          string
	Title       string
	Description *string
	DueAt       *time.Time
	Completed   bool
	Priority    Priority
	OwnerID     string
	SubjectID   *string
	CreatedAt   time.Time
}

func (t *Task) GetID() string      { return t.ID }
func (t *Task) GetOwnerID() string { return t.OwnerID }

// Clone возвращает независимую копию.
func (t *Task) Clone() *Task {
	c := *t
	c.Description = cloneString(t.Description)
	c.SubjectID = cloneString(t.SubjectID)
	if t.DueAt != nil {
		v := *t.DueAt
		c.DueAt = &v
	}
	return &c
}

// Normalize обрезает пробелы, подставляет приоритет по умолчанию и проверяет поля.
func (t *Task) Normalize() error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if runeLen(t.Title) > MaxTaskTitleLength {
		return ErrTaskTitleLong
	}
	t.Description = trimOptional(t.Description)
	t.SubjectID = trimOptional(t.SubjectID)
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// IsUrgent сообщает, что задача не выполнена и ее срок наступает не позже now+UrgentWindow.
func (t *Task) IsUrgent(now time.Time) bool {
	return !t.Completed && t.DueAt != nil && !t.DueAt.After(now.Add(UrgentWindow))
}
