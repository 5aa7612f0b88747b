package app

import (
	"context"
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

// BearerPrefix - обязательный префикс заголовка Authorization.
const BearerPrefix = "Bearer "

const (
	methodResolve = "Resolve"

	msgResolvingIdentity = "resolving identity"
	msgMissingBearer     = "authorization header missing or not Bearer"
	msgTokenRejected     = "token rejected"
	msgTokenRevoked      = "revoked token presented"
	msgUnknownSubject    = "token subject has no active user"
	msgIdentityResolved  = "identity resolved"

	msgErrRevocationCheck = "failed to check token revocation"
	msgErrFindingSubject  = "failed to look up token subject"

	errCtxResolving = "resolving identity"
)

// IdentityResolverImpl реализует api.IdentityResolver.
type IdentityResolverImpl struct {
	userRepo       repositories.UserRepository
	revocationRepo repositories.RevocationRepository
	tokenSvc       svc.TokenService
}

// NewIdentityResolver создает резолвер личности.
func NewIdentityResolver(
	userRepo repositories.UserRepository,
	revocationRepo repositories.RevocationRepository,
	tokenSvc svc.TokenService,
) api.IdentityResolver {
	return &IdentityResolverImpl{
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		tokenSvc:       tokenSvc,
	}
}

// Resolve проверяет заголовок, токен и отзыв, затем находит активного пользователя по email из токена.
func (r *IdentityResolverImpl) Resolve(ctx context.Context, authorizationHeader string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodResolve))
	log.Debug(ctx, msgResolvingIdentity)

	token, ok := strings.CutPrefix(authorizationHeader, BearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		log.Debug(ctx, msgMissingBearer)
		return nil, services.ErrMissingCredential
	}

	claims, err := r.tokenSvc.Parse(ctx, strings.TrimSpace(token))
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxResolving, err)
	}

	if claims.TokenID != "" {
		revoked, err := r.revocationRepo.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			log.Error(ctx, msgErrRevocationCheck, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxResolving, err)
		}
		if revoked {
			log.Debug(ctx, msgTokenRevoked)
			return nil, services.ErrRevokedToken
		}
	}

	user, err := r.userRepo.FindActiveByEmail(ctx, entities.NormalizeEmail(claims.Subject))
	if err != nil {
		if isNotFound(err) {
			log.Debug(ctx, msgUnknownSubject)
			return nil, services.ErrUnknownUser
		}
		log.Error(ctx, msgErrFindingSubject, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxResolving, err)
	}

	log.Debug(ctx, msgIdentityResolved, zap.String("userID", user.ID))
	return user, nil
}
