package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"studymate/internal/auth/domain/entities"
	"studymate/internal/auth/domain/services"
	"studymate/internal/auth/ports/api"
	"studymate/internal/auth/ports/repositories"
	svc "studymate/internal/auth/ports/services"
	"studymate/pkg/logger"
)

const (
	methodGetUserProfile = "GetUserProfile"
	methodUpdateProfile  = "UpdateProfile"
	methodDeactivate     = "Deactivate"

	msgRequestingProfile   = "requesting user profile"
	msgEmptyUserIDProvided = "empty user ID provided"
	msgProfileRetrieved    = "user profile successfully retrieved"
	msgInvalidProfile      = "invalid profile data"
	msgProfileUpdated      = "user profile updated"
	msgUserDeactivated     = "user deactivated"
	msgErrFindingUserByID  = "failed to find user by ID"
	msgErrUpdatingUser     = "failed to update user"

	errCtxValidatingUserID  = "validating user ID"
	errCtxFetchingProfile   = "fetching user profile"
	errCtxValidatingProfile = "validating profile"
	errCtxUpdatingUser      = "updating user"
)

// UserUseCaseImpl реализует api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase создает сервис профиля.
func NewUserUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo, passwordSvc: passwordSvc}
}

// GetUserProfile возвращает пользователя по ID.
func (u *UserUseCaseImpl) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserProfile), zap.String("userID", userID))
	log.Debug(ctx, msgRequestingProfile)

	user, err := u.find(ctx, log, userID)
	if err != nil {
		return nil, err
	}

	log.Debug(ctx, msgProfileRetrieved)
	return user, nil
}

// UpdateProfile меняет имя, фамилию и, если передан, пароль.
func (u *UserUseCaseImpl) UpdateProfile(ctx context.Context, userID string, input api.ProfileInput) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProfile), zap.String("userID", userID))

	if err := entities.ValidateNames(input.FirstName, input.LastName); err != nil {
		log.Debug(ctx, msgInvalidProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingProfile, err)
	}
	if input.Password != nil {
		if err := services.ValidatePassword(*input.Password); err != nil {
			log.Debug(ctx, msgInvalidProfile, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingProfile, err)
		}
	}

	user, err := u.find(ctx, log, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	if input.Password != nil {
		hash, err := u.passwordSvc.Hash(ctx, *input.Password)
		if err != nil {
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
		user.PasswordHash = hash
	}

	updated, err := u.save(ctx, log, user)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgProfileUpdated)
	return updated, nil
}

// Deactivate помечает пользователя неактивным. Повторный вызов не является ошибкой.
func (u *UserUseCaseImpl) Deactivate(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeactivate), zap.String("userID", userID))

	user, err := u.find(ctx, log, userID)
	if err != nil {
		return err
	}
	if !user.Active {
		return nil
	}

	user.Active = false
	if _, err := u.save(ctx, log, user); err != nil {
		return err
	}

	log.Info(ctx, msgUserDeactivated)
	return nil
}

func (u *UserUseCaseImpl) find(ctx context.Context, log *logger.Logger, userID string) (*entities.User, error) {
	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}
	return user, nil
}

func (u *UserUseCaseImpl) save(ctx context.Context, log *logger.Logger, user *entities.User) (*entities.User, error) {
	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		if !isNotFound(err) {
			log.Error(ctx, msgErrUpdatingUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}
	return updated, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, entities.ErrUserNotFound)
}
