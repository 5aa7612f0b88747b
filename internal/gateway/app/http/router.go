// Package http содержит компоненты для HTTP сервера.
package http

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	assistantapi "studymate/internal/assistant/ports/api"
	authapi "studymate/internal/auth/ports/api"
	"studymate/internal/gateway/app/http/assistant"
	"studymate/internal/gateway/app/http/auth"
	"studymate/internal/gateway/app/http/middleware"
	"studymate/internal/gateway/app/http/response"
	"studymate/internal/gateway/app/http/study"
	"studymate/internal/shared"
	studyapi "studymate/internal/study/ports/api"
)

// Dependencies - сценарии, которые обслуживает HTTP сервер.
type Dependencies struct {
	Auth      authapi.AuthUseCase
	Users     authapi.UserUseCase
	Resolver  authapi.IdentityResolver
	Subjects  studyapi.SubjectUseCase
	Notes     studyapi.NoteUseCase
	Tasks     studyapi.TaskUseCase
	Assistant assistantapi.AssistantUseCase
}

// MsgHealthy - ответ проверки живости процесса.
const MsgHealthy = "Backend funcionando correctamente"

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	authHandler := auth.NewHandler(deps.Auth, deps.Users, deps.Resolver)
	studyHandler := study.NewHandler(deps.Subjects, deps.Notes, deps.Tasks)
	assistantHandler := assistant.NewHandler(deps.Assistant)
	requireAuth := middleware.NewAuthMiddleware(deps.Resolver, response.Error)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, MsgHealthy, nil)
	})

	// Auth routes.
	authRoutes := app.Group("/auth")
	authRoutes.Post("/registro", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/me", authHandler.Me)
	authRoutes.Post("/logout", authHandler.Logout, requireAuth)

	// Защищенные маршруты. Владелец всегда берется из токена, не из пути.
	users := app.Group("/usuarios", requireAuth)
	users.Put("/me", authHandler.UpdateProfile)
	users.Delete("/me", authHandler.Deactivate)

	subjects := app.Group("/materias", requireAuth)
	subjects.Get("/", studyHandler.ListSubjects)
	subjects.Post("/", studyHandler.CreateSubject)
	subjects.Get("/:id", studyHandler.GetSubject)
	subjects.Put("/:id", studyHandler.UpdateSubject)
	subjects.Delete("/:id", studyHandler.DeleteSubject)
	subjects.Get("/:id/notas", studyHandler.ListSubjectNotes)
	subjects.Get("/:id/tareas", studyHandler.ListSubjectTasks)

	notes := app.Group("/notas", requireAuth)
	notes.Get("/", studyHandler.ListNotes)
	notes.Post("/", studyHandler.CreateNote)
	notes.Get("/:id", studyHandler.GetNote)
	notes.Put("/:id", studyHandler.UpdateNote)
	notes.Delete("/:id", studyHandler.DeleteNote)

	// Статические пути регистрируются раньше /:id.
	tasks := app.Group("/tareas", requireAuth)
	tasks.Get("/", studyHandler.ListTasks)
	tasks.Post("/", studyHandler.CreateTask)
	tasks.Get("/urgentes", studyHandler.ListUrgentTasks)
	tasks.Get("/pendientes", studyHandler.ListPendingTasks)
	tasks.Get("/generales", studyHandler.ListGeneralTasks)
	tasks.Get("/:id", studyHandler.GetTask)
	tasks.Put("/:id", studyHandler.UpdateTask)
	tasks.Patch("/:id/completar", studyHandler.CompleteTask)
	tasks.Delete("/:id", studyHandler.DeleteTask)

	aiRoutes := app.Group("/ai")
	aiRoutes.Post("/chatbot", assistantHandler.Chat)
	aiRoutes.Post("/plan-estudio", assistantHandler.StudyPlan)
	aiRoutes.Post("/resumir-pdf", assistantHandler.Summarize)
	aiRoutes.Get("/health", assistantHandler.Health)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return response.Error(c, fmt.Errorf("%w: route %s %s", shared.ErrNotFound, c.Method(), c.Path()))
	})
}
