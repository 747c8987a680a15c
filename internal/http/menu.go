package httpx

import (
	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
)

// MenuEntry is a single navigation item the browser renders in the
// dashboard sidebar.
type MenuEntry struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Base entries every signed-in user sees regardless of role.
//
//nolint:gochecknoglobals // static read-only menu definitions
var baseMenu = []MenuEntry{
	{Icon: "home", Label: "Home", Path: "/dashboard"},
	{Icon: "user", Label: "My Profile", Path: "/dashboard/profile"},
	{Icon: "logout", Label: "Logout", Path: "/auth/logout"},
}

//nolint:gochecknoglobals // static read-only menu definitions
var roleMenus = map[domainauth.Role][]MenuEntry{
	domainauth.RoleUser: {
		{Icon: "receipt", Label: "My Orders", Path: "/dashboard/my-orders"},
		{Icon: "star", Label: "My Reviews", Path: "/dashboard/my-reviews"},
		{Icon: "heart", Label: "Favorite Meals", Path: "/dashboard/favorites"},
	},
	domainauth.RoleChef: {
		{Icon: "plus", Label: "Create Meal", Path: "/dashboard/create-meal"},
		{Icon: "utensils", Label: "My Meals", Path: "/dashboard/my-meals"},
		{Icon: "inbox", Label: "Order Requests", Path: "/dashboard/order-requests"},
	},
	domainauth.RoleAdmin: {
		{Icon: "users", Label: "Manage Users", Path: "/dashboard/manage-users"},
		{Icon: "clipboard", Label: "Manage Requests", Path: "/dashboard/manage-requests"},
		{Icon: "chart", Label: "Platform Statistics", Path: "/dashboard/statistics"},
	},
}

// MenuForRole returns the navigation entries for a role: the role-specific
// entries followed by the base entries. An unresolved role gets only the
// base entries, so a session whose role lookup failed never sees
// capabilities it may not hold.
func MenuForRole(role domainauth.Role) []MenuEntry {
	entries, ok := roleMenus[role]
	if !ok {
		return append([]MenuEntry(nil), baseMenu...)
	}
	out := make([]MenuEntry, 0, len(entries)+len(baseMenu))
	out = append(out, entries...)
	out = append(out, baseMenu...)
	return out
}
