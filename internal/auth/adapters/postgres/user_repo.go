// Package postgres реализует хранилище учетных записей в PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"studymate/internal/auth/domain/entities"
	"studymate/internal/auth/ports/repositories"
	pgutil "studymate/pkg/db/postgres"
	"studymate/pkg/logger"
)

// PgxPoolInterface - подмножество pgxpool.Pool, которое нужно репозиториям.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

const userColumns = `id, first_name, last_name, email, password_hash, active, registered_at`

// UserRepository реализует repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	if err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RegisteredAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create сохраняет пользователя. Нарушение уникальности email дает ErrEmailAlreadyTaken.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (id, first_name, last_name, email, password_hash, active, registered_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Active,
		user.RegisteredAt,
	))
	if err != nil {
		if _, ok := pgutil.IsUniqueViolation(err); ok {
			log.Debug(ctx, "email already registered")
			return nil, entities.ErrEmailAlreadyTaken
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}
	return user, nil
}

// FindByEmail находит пользователя по email независимо от активности.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findByEmail(ctx, "FindByEmail", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindActiveByEmail находит только активного пользователя.
func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findByEmail(ctx, "FindActiveByEmail",
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND active = TRUE`, email)
}

func (r *UserRepository) findByEmail(ctx context.Context, method, query, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return user, nil
}

// ExistsByEmail проверяет, занят ли email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "ExistsByEmail"))

	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		log.Error(ctx, "error checking email", zap.Error(err))
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// Update сохраняет имя, email, хэш пароля и признак активности.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	query := `
        UPDATE users
        SET first_name = $2, last_name = $3, email = $4, password_hash = $5, active = $6
        WHERE id = $1
        RETURNING ` + userColumns

	updated, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Active,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", user.ID))
			return nil, entities.ErrUserNotFound
		}
		if _, ok := pgutil.IsUniqueViolation(err); ok {
			log.Debug(ctx, "email already registered")
			return nil, entities.ErrEmailAlreadyTaken
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}
