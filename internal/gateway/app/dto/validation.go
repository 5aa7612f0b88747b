package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	assistantentities "studymate/internal/assistant/domain/entities"
	authentities "studymate/internal/auth/domain/entities"
	"studymate/internal/auth/domain/services"
	"studymate/internal/shared"
	studyentities "studymate/internal/study/domain/entities"
)

// Ошибки проверки тел запросов. Текст уходит клиенту в поле message.
var (
	ErrFirstNameRequired = fmt.Errorf("%w: El nombre es obligatorio", shared.ErrValidation)
	ErrFirstNameLength   = fmt.Errorf("%w: El nombre debe tener entre %d y %d caracteres",
		shared.ErrValidation, authentities.MinFirstNameLength, authentities.MaxFirstNameLength)
	ErrLastNameLength = fmt.Errorf("%w: El apellido debe tener máximo %d caracteres",
		shared.ErrValidation, authentities.MaxLastNameLength)
	ErrEmailRequired    = fmt.Errorf("%w: El email es obligatorio", shared.ErrValidation)
	ErrEmailFormat      = fmt.Errorf("%w: El formato del email no es válido", shared.ErrValidation)
	ErrPasswordRequired = fmt.Errorf("%w: La contraseña es obligatoria", shared.ErrValidation)
	ErrPasswordLength   = fmt.Errorf("%w: La contraseña debe tener entre %d y %d caracteres",
		shared.ErrValidation, services.MinPasswordLength, services.MaxPasswordLength)

	ErrSubjectNameRequired = fmt.Errorf("%w: El nombre de la materia es obligatorio", shared.ErrValidation)
	ErrSubjectNameLength   = fmt.Errorf("%w: El nombre debe tener entre %d y %d caracteres",
		shared.ErrValidation, studyentities.MinSubjectNameLength, studyentities.MaxSubjectNameLength)
	ErrNoteTitleRequired = fmt.Errorf("%w: El título de la nota es obligatorio", shared.ErrValidation)
	ErrTaskTitleRequired = fmt.Errorf("%w: El título de la tarea es obligatorio", shared.ErrValidation)
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func runes(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func validateNames(firstName, lastName string) error {
	if blank(firstName) {
		return ErrFirstNameRequired
	}
	if n := runes(firstName); n < authentities.MinFirstNameLength || n > authentities.MaxFirstNameLength {
		return ErrFirstNameLength
	}
	if runes(lastName) > authentities.MaxLastNameLength {
		return ErrLastNameLength
	}
	return nil
}

func validatePassword(password string) error {
	if blank(password) {
		return ErrPasswordRequired
	}
	if n := len(password); n < services.MinPasswordLength || n > services.MaxPasswordLength {
		return ErrPasswordLength
	}
	return nil
}

func (r RegisterRequest) Validate() error {
	if err := validateNames(r.Nombre, r.Apellido); err != nil {
		return err
	}
	if blank(r.Email) {
		return ErrEmailRequired
	}
	if authentities.ValidateEmail(authentities.NormalizeEmail(r.Email)) != nil {
		return ErrEmailFormat
	}
	return validatePassword(r.Password)
}

// Validate проверяет только наличие полей: длина пароля при входе не раскрывается.
func (r LoginRequest) Validate() error {
	if blank(r.Email) {
		return ErrEmailRequired
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

func (r UpdateProfileRequest) Validate() error {
	if err := validateNames(r.Nombre, r.Apellido); err != nil {
		return err
	}
	if r.Password != nil {
		return validatePassword(*r.Password)
	}
	return nil
}

func (r SubjectRequest) Validate() error {
	if blank(r.Nombre) {
		return ErrSubjectNameRequired
	}
	if n := runes(r.Nombre); n < studyentities.MinSubjectNameLength || n > studyentities.MaxSubjectNameLength {
		return ErrSubjectNameLength
	}
	return nil
}

func (r NoteRequest) Validate() error {
	if blank(r.Titulo) {
		return ErrNoteTitleRequired
	}
	return nil
}

func (r TaskRequest) Validate() error {
	if blank(r.Titulo) {
		return ErrTaskTitleRequired
	}
	return nil
}

func (r ChatRequest) Validate() error {
	if blank(r.Pregunta) {
		return assistantentities.ErrEmptyQuestion
	}
	return nil
}

func (r StudyPlanRequest) Validate() error {
	if len(r.Materias) == 0 {
		return assistantentities.ErrNoSubjects
	}
	if r.HorasDisponibles <= 0 {
		return assistantentities.ErrInvalidHours
	}
	return nil
}

func (r SummaryRequest) Validate() error {
	if blank(r.Contenido) {
		return assistantentities.ErrEmptyContent
	}
	return nil
}
