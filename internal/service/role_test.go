package service

import (
	"context"
	"sync"
	"testing"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/mocks"
	mockbackend "github.com/SowvikSuvo/chefbazaar-gateway/internal/mocks/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func settledSession() domainauth.Session {
	return domainauth.Session{
		ID:     "s1",
		UserID: "u1",
		Email:  "chef@example.com",
		Role:   domainauth.RoleUnknown,
	}
}

func TestRoleService_UnsettledSessionSkipsBackend(t *testing.T) {
	provider, _, _, users := mockbackend.NewFakeProvider()
	svc := NewRoleService(RoleServiceOptions{Backends: provider})

	role, err := svc.Resolve(context.Background(), domainauth.Session{ID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleUnknown, role)
	assert.Zero(t, users.RoleOfCalls, "unsettled session must not hit the directory")
}

func TestRoleService_ResolvesAndCaches(t *testing.T) {
	provider, _, _, users := mockbackend.NewFakeProvider()
	users.RoleOfFunc = func(_ context.Context, email string) (domainauth.Role, error) {
		assert.Equal(t, "chef@example.com", email)
		return domainauth.RoleChef, nil
	}
	svc := NewRoleService(RoleServiceOptions{Backends: provider})

	for range 3 {
		role, err := svc.Resolve(context.Background(), settledSession())
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleChef, role)
	}
	assert.Equal(t, 1, users.RoleOfCalls, "repeat resolutions served from cache")
}

func TestRoleService_InvalidateForcesLookup(t *testing.T) {
	provider, _, _, users := mockbackend.NewFakeProvider()
	roles := []domainauth.Role{domainauth.RoleUser, domainauth.RoleChef}
	users.RoleOfFunc = func(context.Context, string) (domainauth.Role, error) {
		return roles[users.RoleOfCalls-1], nil
	}
	svc := NewRoleService(RoleServiceOptions{Backends: provider})

	role, err := svc.Resolve(context.Background(), settledSession())
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleUser, role)

	svc.Invalidate("chef@example.com")

	role, err = svc.Resolve(context.Background(), settledSession())
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleChef, role)
	assert.Equal(t, 2, users.RoleOfCalls)
}

func TestRoleService_ConcurrentResolutionsCollapse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserAPI(ctrl)
	// Exactly one backend lookup regardless of concurrency.
	mockUsers.EXPECT().
		RoleOf(gomock.Any(), "chef@example.com").
		DoAndReturn(func(context.Context, string) (domainauth.Role, error) {
			time.Sleep(20 * time.Millisecond) // hold the flight open
			return domainauth.RoleChef, nil
		}).
		Times(1)

	provider, _, _, _ := mockbackend.NewFakeProvider()
	provider.Backend.Users = mockUsers
	svc := NewRoleService(RoleServiceOptions{Backends: provider})

	var wg sync.WaitGroup
	results := make([]domainauth.Role, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			role, err := svc.Resolve(context.Background(), settledSession())
			require.NoError(t, err)
			results[i] = role
		}()
	}
	wg.Wait()

	for _, role := range results {
		assert.Equal(t, domainauth.RoleChef, role)
	}
}

func TestRoleService_CacheExpires(t *testing.T) {
	provider, _, _, users := mockbackend.NewFakeProvider()
	users.RoleOfFunc = func(context.Context, string) (domainauth.Role, error) {
		return domainauth.RoleUser, nil
	}
	svc := NewRoleService(RoleServiceOptions{Backends: provider, CacheTTL: 10 * time.Millisecond})

	_, err := svc.Resolve(context.Background(), settledSession())
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = svc.Resolve(context.Background(), settledSession())
	require.NoError(t, err)

	assert.Equal(t, 2, users.RoleOfCalls, "expired cache entry triggers a fresh lookup")
}
