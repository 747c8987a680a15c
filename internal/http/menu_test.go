package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
)

func menuLabels(entries []MenuEntry) []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}

func TestMenuForRole_EveryRoleGetsAMenu(t *testing.T) {
	roles := []domainauth.Role{
		domainauth.RoleUser,
		domainauth.RoleChef,
		domainauth.RoleAdmin,
		domainauth.RoleUnknown,
		domainauth.Role("superuser"),
	}
	for _, role := range roles {
		entries := MenuForRole(role)
		require.NotEmpty(t, entries, "role %q must resolve to a menu", role)
		assert.Contains(t, menuLabels(entries), "Logout")
	}
}

func TestMenuForRole_Customer(t *testing.T) {
	labels := menuLabels(MenuForRole(domainauth.RoleUser))
	assert.Contains(t, labels, "My Orders")
	assert.Contains(t, labels, "My Reviews")
	assert.Contains(t, labels, "Favorite Meals")
	assert.NotContains(t, labels, "Create Meal")
	assert.NotContains(t, labels, "Manage Users")
}

func TestMenuForRole_Chef(t *testing.T) {
	labels := menuLabels(MenuForRole(domainauth.RoleChef))
	assert.Contains(t, labels, "Create Meal")
	assert.Contains(t, labels, "My Meals")
	assert.Contains(t, labels, "Order Requests")
	assert.NotContains(t, labels, "My Orders")
}

func TestMenuForRole_Admin(t *testing.T) {
	labels := menuLabels(MenuForRole(domainauth.RoleAdmin))
	assert.Contains(t, labels, "Manage Users")
	assert.Contains(t, labels, "Manage Requests")
	assert.Contains(t, labels, "Platform Statistics")
}

func TestMenuForRole_UnknownRoleFallsBackToBase(t *testing.T) {
	entries := MenuForRole(domainauth.RoleUnknown)
	assert.Equal(t, menuLabels(baseMenu), menuLabels(entries),
		"an unresolved role sees only the base entries")
}
