package entities

import (
	"fmt"
	"strings"
	"time"

	"studymate/internal/shared"
)

// Ограничения заметки.
const (
	MaxNoteTitleLength = 200
	DefaultNoteColor   = "#ffffff"
)

// Ошибки заметки.
var (
	ErrEmptyNoteTitle = fmt.Errorf("%w: note title is required", shared.ErrValidation)
	ErrNoteTitleLong  = fmt.Errorf("%w: note title must be at most %d characters", shared.ErrValidation, MaxNoteTitleLength)
	ErrNoteNotFound   = fmt.Errorf("%w: note", shared.ErrNotFound)
	ErrNoteForbidden  = fmt.Errorf("%w: note belongs to another user", shared.ErrForbidden)
)

// Note - заметка (nota), возможно привязанная к предмету.
type Note struct {
	ID        string
	Title     string
	Content   string
	Color     string
	Favorite  bool
	OwnerID   string
	SubjectID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *Note) GetID() string      { return n.ID }
func (n *Note) GetOwnerID() string { return n.OwnerID }

// Clone возвращает независимую копию.
func (n *Note) Clone() *Note {
	c := *n
	c.SubjectID = cloneString(n.SubjectID)
	return &c
}

// Normalize обрезает пробелы, подставляет значения по умолчанию и проверяет поля.
func (n *Note) Normalize() error {
	n.Title = strings.TrimSpace(n.Title)
	if n.Title == "" {
		return ErrEmptyNoteTitle
	}
	if runeLen(n.Title) > MaxNoteTitleLength {
		return ErrNoteTitleLong
	}
	n.SubjectID = trimOptional(n.SubjectID)

	color, err := normalizeColor(n.Color, DefaultNoteColor)
	if err != nil {
		return err
	}
	n.Color = color
	return nil
}
