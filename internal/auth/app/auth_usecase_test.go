package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studymate/internal/auth/app"
	"studymate/internal/auth/domain/entities"
	"studymate/internal/auth/domain/services"
	"studymate/internal/auth/ports/api"
	"studymate/internal/shared"
	"studymate/pkg/logger"
)

type authMocks struct {
	users      *MockUserRepository
	revocation *MockRevocationRepository
	passwords  *MockPasswordService
	tokens     *MockTokenService
}

func newAuthUseCase() (api.AuthUseCase, *authMocks) {
	m := &authMocks{
		users:      new(MockUserRepository),
		revocation: new(MockRevocationRepository),
		passwords:  new(MockPasswordService),
		tokens:     new(MockTokenService),
	}
	return app.NewAuthUseCase(m.users, m.revocation, m.passwords, m.tokens), m
}

func testContext() context.Context {
	return logger.NewContext(context.Background(), logger.NewNop())
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := testContext()
	expiresAt := time.Now().Add(24 * time.Hour)
	validInput := api.RegisterInput{FirstName: "Ana", LastName: "Gómez", Email: " A@X.com ", Password: "secret1"}

	tests := []struct {
		name       string
		input      api.RegisterInput
		setupMocks func(m *authMocks)
		wantErrIs  error
	}{
		{
			name:  "success normalizes email",
			input: validInput,
			setupMocks: func(m *authMocks) {
				m.users.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil).Once()
				m.passwords.On("Hash", mock.Anything, "secret1").Return("hashed", nil).Once()
				m.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Email == "a@x.com" && u.FirstName == "Ana" && u.PasswordHash == "hashed" &&
						u.Active && u.ID != "" && !u.RegisteredAt.IsZero()
				})).Return(&entities.User{ID: "u1", Email: "a@x.com", FirstName: "Ana", Active: true}, nil).Once()
				m.tokens.On("Issue", mock.Anything, "a@x.com").Return("token", expiresAt, nil).Once()
			},
		},
		{
			name:       "invalid email",
			input:      api.RegisterInput{FirstName: "Ana", Email: "nope", Password: "secret1"},
			setupMocks: func(*authMocks) {},
			wantErrIs:  shared.ErrValidation,
		},
		{
			name:       "short first name",
			input:      api.RegisterInput{FirstName: "A", Email: "a@x.com", Password: "secret1"},
			setupMocks: func(*authMocks) {},
			wantErrIs:  entities.ErrInvalidFirstName,
		},
		{
			name:       "short password",
			input:      api.RegisterInput{FirstName: "Ana", Email: "a@x.com", Password: "123"},
			setupMocks: func(*authMocks) {},
			wantErrIs:  services.ErrInvalidPassword,
		},
		{
			name:  "duplicate email",
			input: validInput,
			setupMocks: func(m *authMocks) {
				m.users.On("ExistsByEmail", mock.Anything, "a@x.com").Return(true, nil).Once()
			},
			wantErrIs: shared.ErrDuplicateEmail,
		},
		{
			name:  "duplicate email detected on insert",
			input: validInput,
			setupMocks: func(m *authMocks) {
				m.users.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil).Once()
				m.passwords.On("Hash", mock.Anything, "secret1").Return("hashed", nil).Once()
				m.users.On("Create", mock.Anything, mock.Anything).Return(nil, entities.ErrEmailAlreadyTaken).Once()
			},
			wantErrIs: shared.ErrDuplicateEmail,
		},
		{
			name:  "token generation failure",
			input: validInput,
			setupMocks: func(m *authMocks) {
				m.users.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil).Once()
				m.passwords.On("Hash", mock.Anything, "secret1").Return("hashed", nil).Once()
				m.users.On("Create", mock.Anything, mock.Anything).Return(&entities.User{ID: "u1", Email: "a@x.com"}, nil).Once()
				m.tokens.On("Issue", mock.Anything, "a@x.com").Return("", time.Time{}, services.ErrGeneratingJWTToken).Once()
			},
			wantErrIs: services.ErrGeneratingJWTToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newAuthUseCase()
			tt.setupMocks(m)

			result, err := uc.Register(ctx, tt.input)

			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token", result.Token)
				assert.Equal(t, expiresAt, result.ExpiresAt)
				assert.Equal(t, "u1", result.User.ID)
			}
			m.users.AssertExpectations(t)
			m.passwords.AssertExpectations(t)
			m.tokens.AssertExpectations(t)
		})
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := testContext()
	user := &entities.User{ID: "u1", Email: "a@x.com", PasswordHash: "hashed", Active: true}
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(m *authMocks)
		wantErrIs  error
	}{
		{
			name:     "success with differently cased email",
			email:    "A@X.COM",
			password: "secret1",
			setupMocks: func(m *authMocks) {
				m.users.On("FindActiveByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()
				m.passwords.On("Verify", mock.Anything, "secret1", "hashed").Return(true, nil).Once()
				m.tokens.On("Issue", mock.Anything, "a@x.com").Return("token", expiresAt, nil).Once()
			},
		},
		{
			name:     "unknown email",
			email:    "b@x.com",
			password: "secret1",
			setupMocks: func(m *authMocks) {
				m.users.On("FindActiveByEmail", mock.Anything, "b@x.com").Return(nil, entities.ErrUserNotFound).Once()
			},
			wantErrIs: shared.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "bad",
			setupMocks: func(m *authMocks) {
				m.users.On("FindActiveByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()
				m.passwords.On("Verify", mock.Anything, "bad", "hashed").Return(false, nil).Once()
			},
			wantErrIs: services.ErrInvalidCredentials,
		},
		{
			name:     "repository failure is not reported as bad credentials",
			email:    "a@x.com",
			password: "secret1",
			setupMocks: func(m *authMocks) {
				m.users.On("FindActiveByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("db down")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newAuthUseCase()
			tt.setupMocks(m)

			result, err := uc.Login(ctx, tt.email, tt.password)

			switch {
			case tt.wantErrIs != nil:
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, result)
			case tt.name == "repository failure is not reported as bad credentials":
				require.Error(t, err)
				assert.NotErrorIs(t, err, shared.ErrInvalidCredentials)
			default:
				require.NoError(t, err)
				assert.Equal(t, "token", result.Token)
				assert.Same(t, user, result.User)
			}
			m.users.AssertExpectations(t)
			m.passwords.AssertExpectations(t)
			m.tokens.AssertExpectations(t)
		})
	}
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctx := testContext()
	expiresAt := time.Now().Add(time.Hour)

	t.Run("revokes token id until expiry", func(t *testing.T) {
		uc, m := newAuthUseCase()
		m.tokens.On("Parse", mock.Anything, "token").
			Return(&services.Claims{Subject: "a@x.com", TokenID: "jti", ExpiresAt: expiresAt}, nil).Once()
		m.revocation.On("Revoke", mock.Anything, "jti", expiresAt).Return(nil).Once()

		require.NoError(t, uc.Logout(ctx, "token"))
		m.revocation.AssertExpectations(t)
	})

	t.Run("invalid token", func(t *testing.T) {
		uc, m := newAuthUseCase()
		m.tokens.On("Parse", mock.Anything, "bad").Return(nil, services.ErrInvalidJWTToken).Once()

		err := uc.Logout(ctx, "bad")
		require.ErrorIs(t, err, shared.ErrInvalidToken)
		m.revocation.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		uc, m := newAuthUseCase()
		m.tokens.On("Parse", mock.Anything, "token").
			Return(&services.Claims{Subject: "a@x.com", TokenID: "jti", ExpiresAt: expiresAt}, nil).Once()
		m.revocation.On("Revoke", mock.Anything, "jti", expiresAt).Return(errors.New("redis down")).Once()

		require.Error(t, uc.Logout(ctx, "token"))
	})
}

func TestUserUseCase_GetUserProfile(t *testing.T) {
	ctx := testContext()
	users := new(MockUserRepository)
	uc := app.NewUserUseCase(users, new(MockPasswordService))

	_, err := uc.GetUserProfile(ctx, "")
	require.ErrorIs(t, err, entities.ErrEmptyUserID)

	users.On("FindByID", mock.Anything, "u1").Return(&entities.User{ID: "u1"}, nil).Once()
	user, err := uc.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	users.On("FindByID", mock.Anything, "u2").Return(nil, entities.ErrUserNotFound).Once()
	_, err = uc.GetUserProfile(ctx, "u2")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	ctx := testContext()
	newPassword := "newsecret"
	tooShort := "abc"

	tests := []struct {
		name       string
		userID     string
		input      api.ProfileInput
		setupMocks func(users *MockUserRepository, passwords *MockPasswordService)
		wantErrIs  error
	}{
		{
			name:   "updates names and keeps password",
			userID: "u1",
			input:  api.ProfileInput{FirstName: " Beatriz ", LastName: "Ruiz"},
			setupMocks: func(users *MockUserRepository, _ *MockPasswordService) {
				users.On("FindByID", mock.Anything, "u1").
					Return(&entities.User{ID: "u1", FirstName: "Ana", Email: "a@x.com", PasswordHash: "old", Active: true}, nil).Once()
				users.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.FirstName == "Beatriz" && u.LastName == "Ruiz" && u.PasswordHash == "old" &&
						u.Email == "a@x.com" && u.Active
				})).Return(&entities.User{ID: "u1", FirstName: "Beatriz"}, nil).Once()
			},
		},
		{
			name:   "rehashes new password",
			userID: "u1",
			input:  api.ProfileInput{FirstName: "Ana", Password: &newPassword},
			setupMocks: func(users *MockUserRepository, passwords *MockPasswordService) {
				users.On("FindByID", mock.Anything, "u1").
					Return(&entities.User{ID: "u1", FirstName: "Ana", PasswordHash: "old", Active: true}, nil).Once()
				passwords.On("Hash", mock.Anything, newPassword).Return("new-hash", nil).Once()
				users.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.PasswordHash == "new-hash"
				})).Return(&entities.User{ID: "u1"}, nil).Once()
			},
		},
		{
			name:       "invalid first name",
			userID:     "u1",
			input:      api.ProfileInput{FirstName: "A"},
			setupMocks: func(*MockUserRepository, *MockPasswordService) {},
			wantErrIs:  shared.ErrValidation,
		},
		{
			name:       "short password",
			userID:     "u1",
			input:      api.ProfileInput{FirstName: "Ana", Password: &tooShort},
			setupMocks: func(*MockUserRepository, *MockPasswordService) {},
			wantErrIs:  services.ErrInvalidPassword,
		},
		{
			name:       "empty user id",
			input:      api.ProfileInput{FirstName: "Ana"},
			setupMocks: func(*MockUserRepository, *MockPasswordService) {},
			wantErrIs:  entities.ErrEmptyUserID,
		},
		{
			name:   "unknown user",
			userID: "missing",
			input:  api.ProfileInput{FirstName: "Ana"},
			setupMocks: func(users *MockUserRepository, _ *MockPasswordService) {
				users.On("FindByID", mock.Anything, "missing").Return(nil, entities.ErrUserNotFound).Once()
			},
			wantErrIs: shared.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			passwords := new(MockPasswordService)
			tt.setupMocks(users, passwords)

			updated, err := app.NewUserUseCase(users, passwords).UpdateProfile(ctx, tt.userID, tt.input)

			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, updated)
				users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "u1", updated.ID)
			}
			users.AssertExpectations(t)
			passwords.AssertExpectations(t)
		})
	}
}

func TestUserUseCase_Deactivate(t *testing.T) {
	ctx := testContext()

	t.Run("clears active flag", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, "u1").Return(&entities.User{ID: "u1", Active: true}, nil).Once()
		users.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.ID == "u1" && !u.Active
		})).Return(&entities.User{ID: "u1"}, nil).Once()

		require.NoError(t, app.NewUserUseCase(users, new(MockPasswordService)).Deactivate(ctx, "u1"))
		users.AssertExpectations(t)
	})

	t.Run("already inactive is a no-op", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, "u1").Return(&entities.User{ID: "u1", Active: false}, nil).Once()

		require.NoError(t, app.NewUserUseCase(users, new(MockPasswordService)).Deactivate(ctx, "u1"))
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, "u1").Return(&entities.User{ID: "u1", Active: true}, nil).Once()
		users.On("Update", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		err := app.NewUserUseCase(users, new(MockPasswordService)).Deactivate(ctx, "u1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrNotFound)
	})
}
