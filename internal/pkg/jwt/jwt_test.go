package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/internal/domain"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, domain.RoleTenant)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleTenant, claims.Role)
	assert.Equal(t, "stayhub", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestService_WrongSecretRejected(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(7, domain.RoleTraveler)
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestService_ExpiredTokenRejected(t *testing.T) {
	svc := &Service{secret: []byte("test-secret"), ttl: -time.Hour}

	token, err := svc.GenerateToken(7, domain.RoleTenant)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNew_ZeroTTLFallsBackToDefault(t *testing.T) {
	svc := New("test-secret", 0)

	token, err := svc.GenerateToken(7, domain.RoleTenant)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestService_GarbageTokenRejected(t *testing.T) {
	_, err := New("test-secret", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
