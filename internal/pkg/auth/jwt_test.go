package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "backstage.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(7, "stage@theater.edu")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.StaffID)
	assert.Equal(t, "stage@theater.edu", claims.Email)
	assert.Equal(t, "backstage.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.GenerateToken(7, "stage@theater.edu")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(7, "stage@theater.edu")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateEmptyToken(t *testing.T) {
	_, err := testService(time.Hour).ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("booth-keys-2024")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "booth-keys-2024"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
