// Package app содержит сценарии аутентификации и разрешение личности по токену.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studymate/internal/auth/domain/entities"
	"studymate/internal/auth/domain/services"
	"studymate/internal/auth/ports/api"
	"studymate/internal/auth/ports/repositories"
	svc "studymate/internal/auth/ports/services"
	"studymate/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"
	methodLogout   = "Logout"

	msgStartRegistration   = "starting user registration"
	msgInvalidRegistration = "invalid registration data"
	msgEmailExists         = "user with this email already exists"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with unknown or inactive email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgProcessingLogout    = "processing logout request"
	msgUserLoggedOut       = "user logged out successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrGenerateToken     = "failed to generate token"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrRevokingToken     = "failed to revoke token"

	errCtxValidating         = "validating registration"
	errCtxCheckingUser       = "checking existing user"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxGeneratingToken    = "generating token"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxParsingToken       = "parsing token"
	errCtxRevokingToken      = "revoking token"
)

// AuthUseCaseImpl реализует api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo       repositories.UserRepository
	revocationRepo repositories.RevocationRepository
	passwordSvc    svc.PasswordService
	tokenSvc       svc.TokenService
	now            func() time.Time
}

// NewAuthUseCase создает сервис аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	revocationRepo repositories.RevocationRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		passwordSvc:    passwordSvc,
		tokenSvc:       tokenSvc,
		now:            time.Now,
	}
}

// Register создает пользователя и сразу выпускает для него токен.
func (a *AuthUseCaseImpl) Register(ctx context.Context, input api.RegisterInput) (*services.AuthResult, error) {
	email := entities.NormalizeEmail(input.Email)
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if err := validateRegistration(email, input); err != nil {
		log.Debug(ctx, msgInvalidRegistration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidating, err)
	}

	exists, err := a.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if exists {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, entities.ErrEmailAlreadyTaken)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hashedPassword,
		Active:       true,
		RegisteredAt: a.now().UTC(),
	})
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return a.issue(ctx, log, createdUser)
}

// Login проверяет email и пароль. Неизвестный email и неверный пароль неразличимы для клиента.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	email = entities.NormalizeEmail(email)
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return a.issue(ctx, log, user)
}

// Logout отзывает предъявленный токен до истечения его срока.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	claims, err := a.tokenSvc.Parse(ctx, token)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxParsingToken, err)
	}

	if claims.TokenID != "" {
		if err := a.revocationRepo.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
			log.Error(ctx, msgErrRevokingToken, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
		}
	}

	log.Info(ctx, msgUserLoggedOut, zap.String("email", claims.Subject))
	return nil
}

func (a *AuthUseCaseImpl) issue(ctx context.Context, log *logger.Logger, user *entities.User) (*services.AuthResult, error) {
	token, expiresAt, err := a.tokenSvc.Issue(ctx, user.Email)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}
	return &services.AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func validateRegistration(email string, input api.RegisterInput) error {
	if err := entities.ValidateNames(input.FirstName, input.LastName); err != nil {
		return err
	}
	if err := entities.ValidateEmail(email); err != nil {
		return err
	}
	return services.ValidatePassword(input.Password)
}
