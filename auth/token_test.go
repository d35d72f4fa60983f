package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseUserToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueUserToken(42)
	require.NoError(t, err)

	userID, err := ParseUserToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestParseUserTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseUserToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseUserTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := IssueUserToken(7)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ParseUserToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentity(t *testing.T) {
	assert.True(t, UserIdentity(1).Authenticated())
	assert.False(t, SessionIdentity("abc").Authenticated())
}
