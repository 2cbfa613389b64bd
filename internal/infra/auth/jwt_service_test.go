package auth

import (
	"strings"
	"testing"
	"time"

	"gamehub/config"
	domainerrors "gamehub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, svc)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)

	// Expiry is issue-time plus TTL.
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, lifetime)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Build the service directly with a negative TTL so issued tokens are
	// already expired.
	svc := &jwtService{
		secret: []byte("test_access_secret_key_very_long_for_testing"),
		ttl:    -time.Minute,
	}

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	// Flip a byte inside the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.Verify(tampered)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	other := &jwtService{secret: []byte("a_completely_different_secret"), ttl: time.Hour}
	claims, err := other.Verify(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_Decode(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	// Decode works without verification, even with a tampered signature.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	unsigned := parts[0] + "." + parts[1] + "."

	claims, ok := svc.Decode(unsigned)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", claims.Email)

	_, ok = svc.Decode("garbage")
	assert.False(t, ok)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	svc, err := NewJWTService(cfg)
	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing secret")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.AccessTokenTTL())
}
