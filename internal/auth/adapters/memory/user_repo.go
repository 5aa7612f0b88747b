// Package memory содержит реализации хранилищ аутентификации в памяти процесса.
package memory

import (
	"context"
	"sync"
	"time"

	"studymate/internal/auth/domain/entities"
	"studymate/internal/auth/ports/repositories"
)

// UserRepository хранит пользователей в map, индексированной по ID и email.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entities.User
	byEmail map[string]string
}

// NewUserRepository создает пустое хранилище.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]string),
	}
}

// Create сохраняет копию пользователя.
func (r *UserRepository) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return nil, entities.ErrEmailAlreadyTaken
	}

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	out := *r.byID[id]
	return &out, nil
}

func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}

// Update заменяет сохраненную копию и переиндексирует email.
func (r *UserRepository) Update(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[user.ID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
		return nil, entities.ErrEmailAlreadyTaken
	}

	stored := *user
	stored.RegisteredAt = current.RegisteredAt
	delete(r.byEmail, current.Email)
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

// RevocationRepository хранит отозванные токены в памяти.
type RevocationRepository struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewRevocationRepository создает хранилище отзыва в памяти.
func NewRevocationRepository() repositories.RevocationRepository {
	return &RevocationRepository{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *RevocationRepository) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, id)
		}
	}
	if until.After(now) {
		r.revoked[tokenID] = until
	}
	return nil
}

func (r *RevocationRepository) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	until, ok := r.revoked[tokenID]
	return ok && until.After(r.now()), nil
}
