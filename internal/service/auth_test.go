package service

import (
	"context"
	"errors"
	"testing"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	mockauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/mocks/auth"
	mockbackend "github.com/SowvikSuvo/chefbazaar-gateway/internal/mocks/backend"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, roleOf func(ctx context.Context, email string) (domainauth.Role, error)) (*AuthService, *mockauth.MemorySessionStore) {
	t.Helper()
	provider, _, _, users := mockbackend.NewFakeProvider()
	users.RoleOfFunc = roleOf
	roles := NewRoleService(RoleServiceOptions{Backends: provider})
	store := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Provider:   mockauth.NewMockAuthProvider(),
		Sessions:   store,
		Roles:      roles,
		SessionTTL: time.Hour,
	})
	return svc, store
}

func TestBeginLogin(t *testing.T) {
	svc, _ := newAuthService(t, nil)

	res, err := svc.BeginLogin(context.Background(), "http://localhost/auth/callback")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AuthURL)
	assert.NotEmpty(t, res.State)
	assert.NotEmpty(t, res.Nonce)

	_, err = svc.BeginLogin(context.Background(), "")
	assert.Error(t, err)
}

func TestCompleteLogin_ResolvesRoleAndSavesSession(t *testing.T) {
	svc, store := newAuthService(t, func(_ context.Context, email string) (domainauth.Role, error) {
		assert.Equal(t, "mock.user@example.com", email)
		return domainauth.RoleChef, nil
	})

	res, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})
	require.NoError(t, err)

	sess := res.Session
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "mock-user-1", sess.UserID)
	assert.Equal(t, domainauth.RoleChef, sess.Role)
	assert.Equal(t, "mock-access-token", sess.Token.AccessToken)

	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Role, stored.Role)
}

func TestCompleteLogin_RoleLookupFailureFallsBackToUnknown(t *testing.T) {
	svc, store := newAuthService(t, func(context.Context, string) (domainauth.Role, error) {
		return domainauth.RoleUnknown, errors.New("directory unavailable")
	})

	res, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})
	require.NoError(t, err, "login must succeed even when role resolution fails")
	assert.Equal(t, domainauth.RoleUnknown, res.Session.Role)
	assert.Equal(t, 1, store.Len())
}

func TestCompleteLogin_RejectsMissingParams(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	for _, in := range []CompleteLoginInput{
		{State: "s", Nonce: "n"},
		{Code: "c", Nonce: "n"},
		{Code: "c", State: "s"},
	} {
		_, err := svc.CompleteLogin(ctx, in)
		assert.Error(t, err)
	}
}

func TestCompleteLogin_CapsSessionTTL(t *testing.T) {
	provider, _, _, _ := mockbackend.NewFakeProvider()
	store := mockauth.NewMemorySessionStore()
	idp := mockauth.NewMockAuthProvider()
	idp.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{
			UserID:    "u1",
			Email:     "u1@example.com",
			ExpiresAt: time.Now().Add(72 * time.Hour), // IdP token outlives the cap
		}, nil
	}
	svc := NewAuthService(AuthServiceOptions{
		Provider:   idp,
		Sessions:   store,
		Roles:      NewRoleService(RoleServiceOptions{Backends: provider}),
		SessionTTL: time.Hour,
	})

	res, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.Session.ExpiresAt, time.Minute)
}

func TestGetSession_ExpiredIsDeleted(t *testing.T) {
	svc, store := newAuthService(t, nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{
		ID:        "old",
		UserID:    "u1",
		Email:     "u1@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := svc.GetSession(ctx, "old")
	require.Error(t, err)
	assert.True(t, ErrSessionExpired(err))
	assert.Zero(t, store.Len(), "expired session is removed")
}

func TestLogout(t *testing.T) {
	svc, store := newAuthService(t, nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{
		ID: "s1", UserID: "u1", Email: "u1@example.com", ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.Logout(ctx, "s1"))
	assert.Zero(t, store.Len())

	assert.NoError(t, svc.Logout(ctx, ""), "empty session ID is a no-op")
}
