package services

import (
	"errors"
	"fmt"
	"time"

	"studymate/internal/shared"
)

// Ошибки JWT.
var (
	ErrInvalidJWTToken    = fmt.Errorf("%w: token is malformed, expired or has a bad signature", shared.ErrInvalidToken)
	ErrExpiredJWTToken    = fmt.Errorf("%w: token has expired", shared.ErrInvalidToken)
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// JWTConfig - настройки сервиса токенов.
type JWTConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// Claims - содержимое проверенного токена.
type Claims struct {
	Subject   string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
