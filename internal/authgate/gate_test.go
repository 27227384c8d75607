package authgate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/api/internal/models"
	"adminpanel/api/internal/security"
)

const testSecret = "gate-secret"

type fakeUserSource struct {
	users map[int64]models.User
	err   error
}

func (f fakeUserSource) GetPublicByID(ctx context.Context, id int64) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

func issueToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := security.IssueSessionToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return token
}

func TestCurrentUserResolvesToken(t *testing.T) {
	gate := New(fakeUserSource{users: map[int64]models.User{
		7: {ID: 7, Email: "a@b.com", Role: models.UserRoleUser},
	}}, testSecret, zerolog.Nop())

	user, ok := gate.CurrentUser(context.Background(), issueToken(t, 7))
	require.True(t, ok)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestCurrentUserAnonymousCases(t *testing.T) {
	gate := New(fakeUserSource{users: map[int64]models.User{}}, testSecret, zerolog.Nop())

	// No token at all.
	_, ok := gate.CurrentUser(context.Background(), "")
	assert.False(t, ok)

	// Unparseable token.
	_, ok = gate.CurrentUser(context.Background(), "17")
	assert.False(t, ok)

	// Valid token for a user deleted after issuance.
	_, ok = gate.CurrentUser(context.Background(), issueToken(t, 7))
	assert.False(t, ok)
}

func TestCurrentUserStoreFailureFailsClosed(t *testing.T) {
	gate := New(fakeUserSource{err: errors.New("store down")}, testSecret, zerolog.Nop())

	_, ok := gate.CurrentUser(context.Background(), issueToken(t, 7))
	assert.False(t, ok)
}

func TestAuthorizeOutcomes(t *testing.T) {
	gate := New(fakeUserSource{users: map[int64]models.User{
		1: {ID: 1, Email: "admin@example.com", Role: models.UserRoleAdmin},
		2: {ID: 2, Email: "user@example.com", Role: models.UserRoleUser},
	}}, testSecret, zerolog.Nop())

	ctx := context.Background()

	outcome := gate.Authorize(ctx, "", models.UserRoleAdmin)
	assert.Equal(t, DecisionUnauthenticated, outcome.Decision)

	outcome = gate.Authorize(ctx, issueToken(t, 2), models.UserRoleAdmin)
	assert.Equal(t, DecisionForbidden, outcome.Decision)
	assert.Equal(t, int64(2), outcome.User.ID)

	outcome = gate.Authorize(ctx, issueToken(t, 1), models.UserRoleAdmin)
	assert.Equal(t, DecisionAuthorized, outcome.Decision)
	assert.Equal(t, int64(1), outcome.User.ID)
}
