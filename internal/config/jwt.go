package config

import (
	"errors"
	"time"
)

// ErrEmptyJWTSecret возвращается при пустом секрете подписи.
var ErrEmptyJWTSecret = errors.New("jwt secret key must not be empty")

// JWTConfig - параметры выпуска токенов и хеширования паролей.
type JWTConfig struct {
	SecretKey  string        `yaml:"secret_key" env:"STUDYMATE_JWT_SECRET_KEY" env-default:"studymate-dev-secret-change-me"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"STUDYMATE_JWT_TOKEN_TTL" env-default:"24h"`
	BCryptCost int           `yaml:"bcrypt_cost" env:"STUDYMATE_BCRYPT_COST" env-default:"10"`
}

// Validate проверяет секрет и время жизни.
func (c *JWTConfig) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptyJWTSecret
	}
	if c.TokenTTL <= 0 {
		return errors.New("jwt token ttl must be positive")
	}
	return nil
}
