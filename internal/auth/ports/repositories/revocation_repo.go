package repositories

import (
	"context"
	"time"
)

// RevocationRepository хранит идентификаторы отозванных токенов до истечения их срока.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
