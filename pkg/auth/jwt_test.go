package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "origination-test",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken("user-1", []string{RoleUnderwriter, RoleManager})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "origination-test", claims.Issuer)
	assert.True(t, claims.HasRole(RoleUnderwriter))
	assert.True(t, claims.HasRole(RoleManager))
	assert.False(t, claims.HasRole(RoleAdmin))
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken("user-1", []string{RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestService(t)
	other, err := NewJWTService(JWTConfig{Secret: "other-secret", Issuer: "origination-test"})
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-1", nil)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "origination-test",
		Expiration: -time.Minute,
	})
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-1", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}
