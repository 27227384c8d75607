package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := IssueSessionToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	userID, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := IssueSessionToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := IssueSessionToken(testSecret, 42, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	for _, token := range []string{"", "17", "not.a.jwt", "a.b"} {
		_, err := ParseSessionToken(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
