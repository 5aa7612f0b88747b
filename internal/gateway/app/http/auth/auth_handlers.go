// Package auth содержит HTTP обработчики регистрации, входа и профиля.
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authapp "studymate/internal/auth/app"
	authsvc "studymate/internal/auth/domain/services"
	"studymate/internal/auth/ports/api"
	"studymate/internal/gateway/app/dto"
	"studymate/internal/gateway/app/http/middleware"
	"studymate/internal/gateway/app/http/request"
	"studymate/internal/gateway/app/http/response"
	"studymate/internal/shared"
	"studymate/pkg/logger"
)

// Константы для логирования и ответов.
const (
	LogHandlerRegister   = "auth handler: register"
	LogHandlerLogin      = "auth handler: login"
	LogHandlerLogout     = "auth handler: logout"
	LogHandlerGetProfile = "auth handler: get profile"
	LogHandlerUpdate     = "user handler: update profile"
	LogHandlerDeactivate = "user handler: deactivate"

	MsgRegistered = "Usuario registrado exitosamente"
	MsgLoggedIn   = "Login exitoso"
	MsgLoggedOut  = "Sesión cerrada correctamente"

	MsgProfileUpdated = "Usuario actualizado correctamente"
	MsgDeactivated    = "Usuario desactivado correctamente"

	keyUser = "usuario"
)

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	auth     api.AuthUseCase
	users    api.UserUseCase
	resolver api.IdentityResolver
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(auth api.AuthUseCase, users api.UserUseCase, resolver api.IdentityResolver) *Handler {
	return &Handler{auth: auth, users: users, resolver: resolver}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.auth.Register(requestCtx, req.ToInput())
	if err != nil {
		log.Debug(requestCtx, "registration rejected", zap.Error(err))
		return response.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTokenResponse(response.StatusSuccess, MsgRegistered, result))
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.auth.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, "login rejected", zap.Error(err))
		return response.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewTokenResponse(response.StatusSuccess, MsgLoggedIn, result))
}

// Logout отзывает предъявленный токен. Маршрут защищен auth middleware.
func (h *Handler) Logout(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerLogout)

	token, _ := bearerToken(c.Get(fiber.HeaderAuthorization))
	if err := h.auth.Logout(requestCtx, token); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, fiber.StatusOK, MsgLoggedOut, nil)
}

// Me возвращает профиль владельца токена. Неизвестный пользователь дает 404.
func (h *Handler) Me(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetProfile)

	user, err := h.resolver.Resolve(requestCtx, c.Get(fiber.HeaderAuthorization))
	if err != nil {
		if errors.Is(err, shared.ErrUnknownUser) {
			return response.ErrorWithStatus(c, fiber.StatusNotFound, err)
		}
		return response.Error(c, err)
	}

	profile, err := h.users.GetUserProfile(requestCtx, user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{keyUser: dto.NewUserResponse(profile)})
}

// UpdateProfile меняет профиль владельца токена. Пользователь берется из auth middleware.
func (h *Handler) UpdateProfile(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerUpdate)

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, authsvc.ErrMissingCredential)
	}

	var req dto.UpdateProfileRequest
	if err := request.Body(c, &req); err != nil {
		return response.Error(c, err)
	}

	updated, err := h.users.UpdateProfile(requestCtx, user.ID, req.ToInput())
	if err != nil {
		log.Debug(requestCtx, "profile update rejected", zap.Error(err))
		return response.Error(c, err)
	}

	return response.Success(c, fiber.StatusOK, MsgProfileUpdated, fiber.Map{keyUser: dto.NewUserResponse(updated)})
}

// Deactivate выключает учетную запись владельца токена; дальнейшие запросы с его токенами отклоняются.
func (h *Handler) Deactivate(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerDeactivate)

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, authsvc.ErrMissingCredential)
	}

	if err := h.users.Deactivate(requestCtx, user.ID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, fiber.StatusOK, MsgDeactivated, nil)
}

func bearerToken(header string) (string, bool) {
	return strings.CutPrefix(header, authapp.BearerPrefix)
}
