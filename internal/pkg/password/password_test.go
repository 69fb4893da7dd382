package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, Verify("correct horse battery", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("samepassword")
	require.NoError(t, err)
	second, err := Hash("samepassword")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("12345678"))
	assert.NoError(t, Validate("a much longer password"))
	assert.ErrorIs(t, Validate("1234567"), ErrTooShort)
	assert.ErrorIs(t, Validate(""), ErrTooShort)
}
