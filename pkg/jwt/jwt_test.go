package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secret", "u1", "staff", "pharmacy-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, role, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", username)
	assert.Equal(t, "staff", role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Generate("secret", "u1", "staff", "pharmacy-api", 60)
	require.NoError(t, err)

	_, _, err = Parse("other-secret", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := Generate("secret", "u1", "staff", "pharmacy-api", -1)
	require.NoError(t, err)

	_, _, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, _, err := Parse("secret", "not-a-token")
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := Generate("", "u1", "staff", "pharmacy-api", 60)
	assert.Error(t, err)
}
