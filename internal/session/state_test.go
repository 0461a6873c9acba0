package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logilink/logilink-client/models"
)

func testIdentity() models.Identity {
	return models.Identity{
		User:         models.User{UserID: 7, FirstName: "Asha", MobileNumber: "9999999999"},
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
}

// ── WithIdentity ────────────────────────────────────────────────────────────

// A successful login sets all identity fields in one transition, never a
// partial state.
func TestWithIdentity_SetsAllFieldsAtOnce(t *testing.T) {
	next := WithIdentity(State{}, testIdentity())

	require.NotNil(t, next.User)
	assert.Equal(t, int64(7), next.User.UserID)
	assert.Equal(t, "access", next.AccessToken)
	assert.Equal(t, "refresh", next.RefreshToken)
	assert.True(t, next.Authenticated())
}

func TestWithIdentity_ClearsLoadingAndError(t *testing.T) {
	prior := State{Loading: true, LastError: "previous attempt failed"}

	next := WithIdentity(prior, testIdentity())

	assert.False(t, next.Loading)
	assert.Empty(t, next.LastError)
}

// ── Cleared ─────────────────────────────────────────────────────────────────

func TestCleared_AlwaysYieldsEmptySession(t *testing.T) {
	states := []State{
		{},
		WithIdentity(State{}, testIdentity()),
		{Loading: true, LastError: "boom"},
	}

	for _, prior := range states {
		next := Cleared(prior)

		assert.False(t, next.Authenticated())
		assert.Nil(t, next.User)
		assert.Empty(t, next.AccessToken)
		assert.Empty(t, next.RefreshToken)
		assert.False(t, next.Loading)
		assert.Empty(t, next.LastError)
	}
}

// ── Authenticated invariant ─────────────────────────────────────────────────

func TestAuthenticated_RequiresBothUserAndToken(t *testing.T) {
	user := models.User{UserID: 1}

	assert.False(t, State{}.Authenticated())
	assert.False(t, State{User: &user}.Authenticated())
	assert.False(t, State{AccessToken: "tok"}.Authenticated())
	assert.True(t, State{User: &user, AccessToken: "tok"}.Authenticated())
}

// ── error flags ─────────────────────────────────────────────────────────────

func TestWithError_DropsLoadingKeepsIdentity(t *testing.T) {
	prior := WithLoading(WithIdentity(State{}, testIdentity()), true)

	next := WithError(prior, "verification failed")

	assert.Equal(t, "verification failed", next.LastError)
	assert.False(t, next.Loading)
	assert.True(t, next.Authenticated(), "error flags must not touch identity")
}

func TestWithoutError(t *testing.T) {
	next := WithoutError(State{LastError: "stale"})
	assert.Empty(t, next.LastError)
}

// ── WithMergedProfile ───────────────────────────────────────────────────────

func TestWithMergedProfile_ShallowMerge(t *testing.T) {
	prior := WithIdentity(State{}, testIdentity())

	next, err := WithMergedProfile(prior, models.User{Email: "asha@example.com", City: "Pune"})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", next.User.Email)
	assert.Equal(t, "Pune", next.User.City)
	// untouched fields survive
	assert.Equal(t, "Asha", next.User.FirstName)
	assert.Equal(t, "9999999999", next.User.MobileNumber)
	// tokens are never part of a profile merge
	assert.Equal(t, "access", next.AccessToken)
	assert.Equal(t, "refresh", next.RefreshToken)
}

func TestWithMergedProfile_NoUser(t *testing.T) {
	_, err := WithMergedProfile(State{}, models.User{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestWithMergedProfile_DoesNotMutatePrior(t *testing.T) {
	prior := WithIdentity(State{}, testIdentity())

	_, err := WithMergedProfile(prior, models.User{City: "Nagpur"})
	require.NoError(t, err)

	assert.Empty(t, prior.User.City, "transitions must not mutate their input")
}
