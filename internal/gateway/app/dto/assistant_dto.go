package dto

import "studymate/internal/assistant/domain/entities"

// ChatRequest - вопрос чат-боту.
type ChatRequest struct {
	Pregunta string `json:"pregunta"`
	Contexto string `json:"contexto"`
}

// ChatResponse - ответ чат-бота.
type ChatResponse struct {
	Respuesta string `json:"respuesta"`
	Pregunta  string `json:"pregunta"`
	Contexto  string `json:"contexto"`
	Timestamp int64  `json:"timestamp"`
	Modelo    string `json:"modelo"`
}

func NewChatResponse(r *entities.ChatReply) ChatResponse {
	return ChatResponse{
		Respuesta: r.Answer,
		Pregunta:  r.Question,
		Contexto:  r.Context,
		Timestamp: r.CreatedAt.UnixMilli(),
		Modelo:    r.Model,
	}
}

// StudyPlanRequest - запрос плана занятий.
type StudyPlanRequest struct {
	Materias         []string `json:"materias"`
	HorasDisponibles int      `json:"horasDisponibles"`
}

// StudyPlanResponse - план занятий.
type StudyPlanResponse struct {
	Plan             string   `json:"plan"`
	Materias         []string `json:"materias"`
	HorasDisponibles int      `json:"horasDisponibles"`
	Timestamp        int64    `json:"timestamp"`
	Modelo           string   `json:"modelo"`
}

func NewStudyPlanResponse(p *entities.StudyPlan) StudyPlanResponse {
	return StudyPlanResponse{
		Plan:             p.Plan,
		Materias:         p.Subjects,
		HorasDisponibles: p.Hours,
		Timestamp:        p.CreatedAt.UnixMilli(),
		Modelo:           p.Model,
	}
}

// SummaryRequest - текст для конспекта.
type SummaryRequest struct {
	Contenido string `json:"contenido"`
}

// SummaryResponse - конспект.
type SummaryResponse struct {
	Resumen           string `json:"resumen"`
	ContenidoOriginal string `json:"contenidoOriginal"`
	Timestamp         int64  `json:"timestamp"`
	Modelo            string `json:"modelo"`
}

func NewSummaryResponse(s *entities.Summary) SummaryResponse {
	return SummaryResponse{
		Resumen:           s.Summary,
		ContenidoOriginal: s.Original,
		Timestamp:         s.CreatedAt.UnixMilli(),
		Modelo:            s.Model,
	}
}

// HealthResponse - состояние ассистента.
type HealthResponse struct {
	Status     string   `json:"status"`
	Services   []string `json:"services"`
	Configured bool     `json:"configured"`
	Circuit    string   `json:"circuit"`
	Timestamp  int64    `json:"timestamp"`
}

func NewHealthResponse(h *entities.Health) HealthResponse {
	return HealthResponse{
		Status:     h.Status,
		Services:   h.Services,
		Configured: h.Configured,
		Circuit:    h.Circuit,
		Timestamp:  h.CheckedAt.UnixMilli(),
	}
}
