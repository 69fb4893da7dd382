package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters-long"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateAccessToken(42, "operator", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "operator", claims.Username)
	assert.Equal(t, "nile-backoffice", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "operator", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "a-different-secret-that-is-long-too")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateExpired(t *testing.T) {
	token, err := GenerateAccessToken(1, "operator", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIDsAreUnique(t *testing.T) {
	first, err := GenerateAccessToken(1, "operator", testSecret, 15)
	require.NoError(t, err)
	second, err := GenerateAccessToken(1, "operator", testSecret, 15)
	require.NoError(t, err)

	firstClaims, err := ValidateAccessToken(first, testSecret)
	require.NoError(t, err)
	secondClaims, err := ValidateAccessToken(second, testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
