package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "eduadmin-test",
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := testJWTService(time.Hour)

	token, expiresIn, err := service.GenerateToken("650112345678", 1, "student")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "650112345678", claims.UserID)
	assert.Equal(t, int64(1), claims.RoleID)
	assert.Equal(t, "student", claims.RoleName)
	assert.Equal(t, "eduadmin-test", claims.Issuer)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := testJWTService(-time.Minute)

	token, _, err := service.GenerateToken("T1000", 2, "instructor")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := testJWTService(time.Hour)
	verifier := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})

	token, _, err := issuer.GenerateToken("admin", 3, "admin")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := testJWTService(time.Hour)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
