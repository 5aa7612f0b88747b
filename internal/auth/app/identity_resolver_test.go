package app_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studymate/internal/auth/app"
	"studymate/internal/auth/domain/entities"
	"studymate/internal/auth/domain/services"
	"studymate/internal/shared"
)

func TestIdentityResolver_Resolve(t *testing.T) {
	ctx := testContext()
	user := &entities.User{ID: "u1", Email: "a@x.com", Active: true}
	claims := &services.Claims{Subject: "a@x.com", TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name       string
		header     string
		setupMocks func(m *authMocks)
		wantUser   *entities.User
		wantErrIs  error
	}{
		{
			name:   "valid bearer token",
			header: "Bearer token",
			setupMocks: func(m *authMocks) {
				m.tokens.On("Parse", mock.Anything, "token").Return(claims, nil).Once()
				m.revocation.On("IsRevoked", mock.Anything, "jti").Return(false, nil).Once()
				m.users.On("FindActiveByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()
			},
			wantUser: user,
		},
		{
			name:       "empty header",
			header:     "",
			setupMocks: func(*authMocks) {},
			wantErrIs:  shared.ErrMissingCredential,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			setupMocks: func(*authMocks) {},
			wantErrIs:  shared.ErrMissingCredential,
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			setupMocks: func(*authMocks) {},
			wantErrIs:  shared.ErrMissingCredential,
		},
		{
			name:   "invalid token",
			header: "Bearer tampered",
			setupMocks: func(m *authMocks) {
				m.tokens.On("Parse", mock.Anything, "tampered").Return(nil, services.ErrInvalidJWTToken).Once()
			},
			wantErrIs: shared.ErrInvalidToken,
		},
		{
			name:   "revoked token",
			header: "Bearer token",
			setupMocks: func(m *authMocks) {
				m.tokens.On("Parse", mock.Anything, "token").Return(claims, nil).Once()
				m.revocation.On("IsRevoked", mock.Anything, "jti").Return(true, nil).Once()
			},
			wantErrIs: shared.ErrInvalidToken,
		},
		{
			name:   "user no longer active",
			header: "Bearer token",
			setupMocks: func(m *authMocks) {
				m.tokens.On("Parse", mock.Anything, "token").Return(claims, nil).Once()
				m.revocation.On("IsRevoked", mock.Anything, "jti").Return(false, nil).Once()
				m.users.On("FindActiveByEmail", mock.Anything, "a@x.com").Return(nil, entities.ErrUserNotFound).Once()
			},
			wantErrIs: shared.ErrUnknownUser,
		},
		{
			name:   "revocation store failure",
			header: "Bearer token",
			setupMocks: func(m *authMocks) {
				m.tokens.On("Parse", mock.Anything, "token").Return(claims, nil).Once()
				m.revocation.On("IsRevoked", mock.Anything, "jti").Return(false, errors.New("redis down")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &authMocks{
				users:      new(MockUserRepository),
				revocation: new(MockRevocationRepository),
				tokens:     new(MockTokenService),
			}
			tt.setupMocks(m)
			resolver := app.NewIdentityResolver(m.users, m.revocation, m.tokens)

			got, err := resolver.Resolve(ctx, tt.header)

			switch {
			case tt.wantUser != nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			case tt.wantErrIs != nil:
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, got)
			default:
				require.Error(t, err)
				assert.Equal(t, shared.CodeInternal, shared.Code(err))
			}
			m.tokens.AssertExpectations(t)
			m.revocation.AssertExpectations(t)
			m.users.AssertExpectations(t)
		})
	}
}
