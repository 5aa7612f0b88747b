package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studymate/internal/shared"
	"studymate/internal/study/domain/entities"
	"studymate/internal/study/ports/api"
)

// ErrInvalidSubjectRef возвращается для materiaId, не являющегося UUID.
var ErrInvalidSubjectRef = fmt.Errorf("%w: materiaId must be a UUID", shared.ErrValidation)

func subjectRef(id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(strings.TrimSpace(*id))
	if err != nil {
		return nil, ErrInvalidSubjectRef
	}
	s := parsed.String()
	return &s, nil
}

// SubjectRequest - тело создания и обновления предмета.
type SubjectRequest struct {
	Nombre      string  `json:"nombre"`
	Codigo      *string `json:"codigo"`
	Descripcion *string `json:"descripcion"`
	Creditos    *int    `json:"creditos"`
	Color       string  `json:"color"`
	Profesor    *string `json:"profesor"`
	Horario     *string `json:"horario"`
}

func (r SubjectRequest) ToInput() api.SubjectInput {
	return api.SubjectInput{
		Name:        r.Nombre,
		Code:        r.Codigo,
		Description: r.Descripcion,
		Credits:     r.Creditos,
		Color:       r.Color,
		Professor:   r.Profesor,
		Schedule:    r.Horario,
	}
}

// SubjectResponse - представление предмета.
type SubjectResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Codigo        *string   `json:"codigo"`
	Descripcion   *string   `json:"descripcion"`
	Creditos      *int      `json:"creditos"`
	Color         string    `json:"color"`
	Profesor      *string   `json:"profesor"`
	Horario       *string   `json:"horario"`
	Activa        bool      `json:"activa"`
	UsuarioID     string    `json:"usuarioId"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

func NewSubjectResponse(s *entities.Subject) SubjectResponse {
	return SubjectResponse{
		ID:            s.ID,
		Nombre:        s.Name,
		Codigo:        s.Code,
		Descripcion:   s.Description,
		Creditos:      s.Credits,
		Color:         s.Color,
		Profesor:      s.Professor,
		Horario:       s.Schedule,
		Activa:        s.Active,
		UsuarioID:     s.OwnerID,
		FechaCreacion: s.CreatedAt,
	}
}

// NoteRequest - тело создания и обновления заметки.
type NoteRequest struct {
	Titulo    string  `json:"titulo"`
	Contenido string  `json:"contenido"`
	Color     string  `json:"color"`
	Favorita  bool    `json:"favorita"`
	MateriaID *string `json:"materiaId"`
}

func (r NoteRequest) ToInput() (api.NoteInput, error) {
	subjectID, err := subjectRef(r.MateriaID)
	if err != nil {
		return api.NoteInput{}, err
	}
	return api.NoteInput{
		Title:     r.Titulo,
		Content:   r.Contenido,
		Color:     r.Color,
		Favorite:  r.Favorita,
		SubjectID: subjectID,
	}, nil
}

// NoteResponse - представление заметки.
type NoteResponse struct {
	ID                string    `json:"id"`
	Titulo            string    `json:"titulo"`
	Contenido         string    `json:"contenido"`
	Color             string    `json:"color"`
	Favorita          bool      `json:"favorita"`
	MateriaID         *string   `json:"materiaId"`
	UsuarioID         string    `json:"usuarioId"`
	FechaCreacion     time.Time `json:"fechaCreacion"`
	FechaModificacion time.Time `json:"fechaModificacion"`
}

func NewNoteResponse(n *entities.Note) NoteResponse {
	return NoteResponse{
		ID:                n.ID,
		Titulo:            n.Title,
		Contenido:         n.Content,
		Color:             n.Color,
		Favorita:          n.Favorite,
		MateriaID:         n.SubjectID,
		UsuarioID:         n.OwnerID,
		FechaCreacion:     n.CreatedAt,
		FechaModificacion: n.UpdatedAt,
	}
}

// TaskRequest - тело создания и обновления задачи. Приоритет принимает и испанские названия.
type TaskRequest struct {
	Titulo           string  `json:"titulo"`
	Descripcion      *string `json:"descripcion"`
	FechaVencimiento *Date   `json:"fechaVencimiento"`
	Prioridad        string  `json:"prioridad"`
	Completada       *bool   `json:"completada"`
	MateriaID        *string `json:"materiaId"`
}

func (r TaskRequest) ToInput() (api.TaskInput, error) {
	priority, err := entities.ParsePriority(r.Prioridad)
	if err != nil {
		return api.TaskInput{}, err
	}
	subjectID, err := subjectRef(r.MateriaID)
	if err != nil {
		return api.TaskInput{}, err
	}
	return api.TaskInput{
		Title:       r.Titulo,
		Description: r.Descripcion,
		DueAt:       r.FechaVencimiento.ptr(),
		Priority:    priority,
		Completed:   r.Completada,
		SubjectID:   subjectID,
	}, nil
}

// TaskResponse - представление задачи.
type TaskResponse struct {
	ID               string     `json:"id"`
	Titulo           string     `json:"titulo"`
	Descripcion      *string    `json:"descripcion"`
	FechaVencimiento *time.Time `json:"fechaVencimiento"`
	Prioridad        string     `json:"prioridad"`
	Completada       bool       `json:"completada"`
	MateriaID        *string    `json:"materiaId"`
	UsuarioID        string     `json:"usuarioId"`
	FechaCreacion    time.Time  `json:"fechaCreacion"`
}

func NewTaskResponse(t *entities.Task) TaskResponse {
	return TaskResponse{
		ID:               t.ID,
		Titulo:           t.Title,
		Descripcion:      t.Description,
		FechaVencimiento: t.DueAt,
		Prioridad:        string(t.Priority),
		Completada:       t.Completed,
		MateriaID:        t.SubjectID,
		UsuarioID:        t.OwnerID,
		FechaCreacion:    t.CreatedAt,
	}
}

