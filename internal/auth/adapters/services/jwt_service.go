package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"studymate/internal/auth/domain/services"
	svc "studymate/internal/auth/ports/services"
	"studymate/pkg/logger"
)

const (
	methodIssue           = "Issue"
	methodParse           = "Parse"
	msgIssuingToken       = "issuing token"
	msgParsingToken       = "parsing token"
	msgTokenIssued        = "token issued successfully"
	msgTokenParsed        = "token parsed successfully"
	msgTokenExpired       = "token has expired"
	msgEmptySecret        = "empty secret key provided"
	msgEmptyIdentity      = "empty identity provided"
	msgEmptySubject       = "token subject is empty"
	errSigningToken       = "error signing token" //nolint:gosec
	errParsingToken       = "error parsing token" //nolint:gosec
	errCtxGeneratingToken = "generating token"
	errCtxParsingToken    = "parsing token"
)

// ServiceJWT выпускает токены HS256 с claims {sub, iat, exp, jti}.
type ServiceJWT struct {
	config services.JWTConfig
	now    func() time.Time
	newID  func() string
}

// Option настраивает ServiceJWT.
type Option func(*ServiceJWT)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *ServiceJWT) {
		s.now = now
	}
}

// WithTokenIDGenerator подменяет генератор идентификаторов токенов.
func WithTokenIDGenerator(newID func() string) Option {
	return func(s *ServiceJWT) {
		s.newID = newID
	}
}

// NewJWT создает сервис токенов.
func NewJWT(secretKey string, tokenTTL time.Duration, opts ...Option) svc.TokenService {
	s := &ServiceJWT{
		config: services.JWTConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue подписывает токен для identity (email).
func (s *ServiceJWT) Issue(ctx context.Context, identity string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIssue))
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, msgEmptySecret)
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, services.ErrGeneratingJWTToken)
	}
	if identity == "" {
		log.Debug(ctx, msgEmptyIdentity)
		return "", time.Time{}, fmt.Errorf("%s: %w: empty identity", errCtxGeneratingToken, services.ErrGeneratingJWTToken)
	}

	now := s.now()
	expiresAt := now.Add(s.config.TokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   identity,
		ID:        s.newID(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Parse проверяет подпись, алгоритм и срок действия токена.
func (s *ServiceJWT) Parse(ctx context.Context, tokenString string) (*services.Claims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodParse))
	log.Debug(ctx, msgParsingToken)

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.config.SecretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidJWTToken, err)
	}

	if claims.Subject == "" {
		log.Debug(ctx, msgEmptySubject)
		return nil, fmt.Errorf("%s: %w: empty subject", errCtxParsingToken, services.ErrInvalidJWTToken)
	}

	result := &services.Claims{
		Subject: claims.Subject,
		TokenID: claims.ID,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	log.Debug(ctx, msgTokenParsed)
	return result, nil
}

// ExtractIdentity возвращает subject проверенного токена.
func (s *ServiceJWT) ExtractIdentity(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.Parse(ctx, tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Validate сообщает, что токен действителен и выпущен для identity.
func (s *ServiceJWT) Validate(ctx context.Context, tokenString, identity string) bool {
	subject, err := s.ExtractIdentity(ctx, tokenString)
	return err == nil && identity != "" && subject == identity
}
