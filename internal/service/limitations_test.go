package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known weaknesses of the in-memory auth model. These tests pin the current
// behaviour so a change to it is deliberate.

func TestKnownLimitation_ReRegistrationOverwrites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.auth.Register(ctx, "a@x.com", "Al", "p1")
	require.NoError(t, err)
	email := loggedIn(t, f, "b@x.com")
	_, err = f.favorites.AddFavorite(ctx, email, paris)
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, "b@x.com", "Bo", "p2")
	require.NoError(t, err, "duplicate registration is not rejected")

	cities, err := f.favorites.ListFavorites(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, cities, "favorites are lost on re-registration")
}

func TestKnownLimitation_TokensSurviveReRegistration(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.auth.Register(ctx, "a@x.com", "Al", "p1")
	require.NoError(t, err)
	tok, err := f.auth.Login(ctx, "a@x.com", "p1")
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, "a@x.com", "Mallory", "p2")
	require.NoError(t, err)

	email, err := f.auth.VerifyToken(ctx, tok)
	require.NoError(t, err, "there is no revocation, old tokens keep working")
	assert.Equal(t, "a@x.com", email)
}

func TestKnownLimitation_NoLogoutAndNoExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.auth.Register(ctx, "a@x.com", "Al", "p1")
	require.NoError(t, err)

	tok, err := f.auth.Login(ctx, "a@x.com", "p1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := f.auth.Login(ctx, "a@x.com", "p1")
		require.NoError(t, err)
	}

	_, err = f.auth.VerifyToken(ctx, tok)
	assert.NoError(t, err, "tokens never expire and are never revoked")
	assert.Equal(t, 4, f.sessions.Count(ctx), "session table only grows")
}

func TestKnownLimitation_PasswordStoredInPlaintext(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.auth.Register(ctx, "a@x.com", "Al", "s3cret")
	require.NoError(t, err)

	u, err := f.users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", u.Password, "passwords are not hashed")
}
