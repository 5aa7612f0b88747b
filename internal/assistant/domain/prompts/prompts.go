// Package prompts собирает системные и пользовательские сообщения для модели.
package prompts

import (
	"fmt"
	"strings"
)

const noContext = "Sin contexto adicional"

const chatSystem = `Eres StudyMate AI, un asistente académico para estudiantes universitarios.
- Explica con claridad y con ejemplos prácticos.
- Si no conoces la respuesta, dilo y sugiere dónde buscar.
- Mantén un tono motivador y respuestas breves.

Contexto adicional: %s`

// StudyPlanSystem - системное сообщение для плана занятий.
const StudyPlanSystem = `Eres un especialista en planificación académica y técnicas de estudio.
- Reparte el tiempo de forma equilibrada y realista entre las materias.
- Propón técnicas concretas (Pomodoro, repaso espaciado, práctica activa).
- Reserva tiempo para descanso y repaso.
- Usa un formato claro y fácil de seguir.`

const studyPlanUser = `Necesito un plan de estudio semanal.

Materias: %s
Horas disponibles por semana: %d

Incluye:
1. Horas por materia
2. Horario sugerido
3. Técnicas de estudio por materia
4. Objetivos semanales`

// SummarySystem - системное сообщение для конспекта.
const SummarySystem = `Eres un especialista en síntesis de contenido académico.
- Identifica los conceptos y definiciones principales.
- Organiza el resumen con títulos y subtítulos.
- Destaca las ideas clave y las palabras clave.`

const summaryUser = `Resume el siguiente contenido académico.

CONTENIDO:
%s

Incluye puntos clave, conceptos fundamentales y palabras clave.`

// ChatSystem подставляет контекст пользователя в системное сообщение.
func ChatSystem(extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		extra = noContext
	}
	return fmt.Sprintf(chatSystem, extra)
}

// StudyPlanMessage формирует запрос плана.
func StudyPlanMessage(subjects []string, hours int) string {
	return fmt.Sprintf(studyPlanUser, strings.Join(subjects, ", "), hours)
}

// SummaryMessage формирует запрос конспекта.
func SummaryMessage(content string) string {
	return fmt.Sprintf(summaryUser, content)
}
