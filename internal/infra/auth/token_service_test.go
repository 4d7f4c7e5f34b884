package auth

import (
	"testing"
	"time"

	"academy/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionKey = "test-session-key"

func newTestTokenService(t *testing.T, issuer string) *jwtTokenService {
	svc, err := NewJWTTokenService(&config.Config{
		Auth: &config.AuthConfig{SessionKey: testSessionKey, Issuer: issuer},
	})
	require.NoError(t, err)

	return svc.(*jwtTokenService)
}

func signToken(t *testing.T, key string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)

	return signed
}

func TestJWTTokenService_VerifySessionToken_Success(t *testing.T) {
	svc := newTestTokenService(t, "")

	token := signToken(t, testSessionKey, jwt.MapClaims{
		"sub":     "user-1",
		"name":    "Ada",
		"email":   "ada@example.com",
		"picture": "https://img.example.com/ada.png",
		"role":    "educator",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "Ada", identity.Name)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "https://img.example.com/ada.png", identity.ImageURL)
	assert.Equal(t, "educator", identity.Role)
}

func TestJWTTokenService_VerifySessionToken_WrongKey(t *testing.T) {
	svc := newTestTokenService(t, "")

	token := signToken(t, "other-key", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifySessionToken(token)
	assert.Error(t, err)
}

func TestJWTTokenService_VerifySessionToken_Expired(t *testing.T) {
	svc := newTestTokenService(t, "")

	token := signToken(t, testSessionKey, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.VerifySessionToken(token)
	assert.Error(t, err)
}

func TestJWTTokenService_VerifySessionToken_MissingExpiry(t *testing.T) {
	svc := newTestTokenService(t, "")

	token := signToken(t, testSessionKey, jwt.MapClaims{
		"sub": "user-1",
	})

	_, err := svc.VerifySessionToken(token)
	assert.Error(t, err)
}

func TestJWTTokenService_VerifySessionToken_IssuerMismatch(t *testing.T) {
	svc := newTestTokenService(t, "https://auth.academy.test")

	token := signToken(t, testSessionKey, jwt.MapClaims{
		"sub": "user-1",
		"iss": "https://other.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifySessionToken(token)
	assert.Error(t, err)
}

func TestJWTTokenService_VerifySessionToken_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t, "")

	token := signToken(t, testSessionKey, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifySessionToken(token)
	assert.Error(t, err)
}

func TestNewJWTTokenService_RequiresSessionKey(t *testing.T) {
	_, err := NewJWTTokenService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTTokenService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}
