// Package redis хранит отозванные токены в Redis с TTL до истечения срока токена.
package redis

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"studymate/internal/auth/ports/repositories"
	"studymate/pkg/logger"
)

const (
	msgTokenRevoked        = "token revoked"
	msgTokenAlreadyExpired = "token already expired, nothing to revoke"
	errCtxRevoking         = "revoking token"
	errCtxChecking         = "checking token revocation"
)

// KeyValueStore - операции Redis, нужные хранилищу отзыва.
type KeyValueStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RevocationRepository реализует repositories.RevocationRepository поверх Redis.
type RevocationRepository struct {
	store  KeyValueStore
	prefix string
	now    func() time.Time
}

// NewRevocationRepository создает хранилище отзыва с префиксом ключей.
func NewRevocationRepository(store KeyValueStore, prefix string) repositories.RevocationRepository {
	return &RevocationRepository{store: store, prefix: prefix, now: time.Now}
}

// Revoke помечает токен отозванным до момента until.
func (r *RevocationRepository) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	log := logger.Log(ctx).With(zap.String("repository", "revocation"), zap.String("method", "Revoke"))

	ttl := until.Sub(r.now())
	if ttl <= 0 {
		log.Debug(ctx, msgTokenAlreadyExpired)
		return nil
	}

	if err := r.store.Set(ctx, r.prefix+tokenID, "1", ttl); err != nil {
		log.Error(ctx, errCtxRevoking, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevoking, err)
	}

	log.Debug(ctx, msgTokenRevoked, zap.Duration("ttl", ttl))
	return nil
}

// IsRevoked сообщает, отозван ли токен.
func (r *RevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := r.store.Exists(ctx, r.prefix+tokenID)
	if err != nil {
		logger.Log(ctx).Error(ctx, errCtxChecking, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxChecking, err)
	}
	return revoked, nil
}
