package repositories

import (
	"context"

	"studymate/internal/auth/domain/entities"
)

// UserRepository - хранилище учетных записей (Credential Store).
// Email передается уже нормализованным.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindActiveByEmail(ctx context.Context, email string) (*entities.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update перезаписывает изменяемые поля пользователя с данным ID.
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
}
