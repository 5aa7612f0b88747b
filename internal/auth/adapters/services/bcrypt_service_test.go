package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapters "studymate/internal/auth/adapters/services"
	"studymate/internal/auth/domain/services"
	"studymate/internal/shared"
)

func TestServiceBcrypt(t *testing.T) {
	ctx := testContext()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	ok, err := svc.Verify(ctx, "secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Verify(ctx, "", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Verify(ctx, "secret1", "not-a-bcrypt-hash")
	require.Error(t, err)
}

func TestServiceBcrypt_Hash_InvalidLength(t *testing.T) {
	ctx := testContext()
	svc := adapters.NewBcrypt(0)

	for _, password := range []string{"", "12345", strings.Repeat("x", 101)} {
		_, err := svc.Hash(ctx, password)
		require.ErrorIs(t, err, services.ErrInvalidPassword)
		assert.ErrorIs(t, err, shared.ErrValidation)
	}
}

func TestServiceFactory(t *testing.T) {
	factory := adapters.NewServiceFactory(testSecret, 0, bcrypt.MinCost)
	assert.NotNil(t, factory.PasswordService())
	assert.NotNil(t, factory.TokenService())
}
