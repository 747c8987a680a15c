package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents a user's authorization role as assigned by the
// marketplace backend. Kept in string form for easy persistence and
// JSON transport. Valid values are defined as constants below.
type Role string

const (
	RoleUser  Role = "user"
	RoleChef  Role = "chef"
	RoleAdmin Role = "admin"

	// RoleUnknown marks a role that could not be resolved. Callers must
	// treat it as "no role-specific capabilities", never as a default role.
	RoleUnknown Role = ""
)

// ParseRole maps a backend role string onto the closed role set.
// Anything outside the set collapses to RoleUnknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser, RoleChef, RoleAdmin:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Known reports whether the role is one of the recognized values.
func (r Role) Known() bool {
	return r == RoleUser || r == RoleChef || r == RoleAdmin
}

// TokenMaterial holds the credential material needed to mint fresh
// bearer tokens for backend calls on behalf of a session.
type TokenMaterial struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry"`
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID     string // stable user identifier (sub)
	Name       string
	Email      string
	PictureURL string
	Token      TokenMaterial
	ExpiresAt  time.Time // absolute expiry from IdP token
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier.
type Session struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	PictureURL string        `json:"picture_url,omitempty"`
	Role       Role          `json:"role"`
	Token      TokenMaterial `json:"token"`
	ExpiresAt  time.Time     `json:"expires_at"`
}

// Settled reports whether the session carries a concrete identity.
// Role resolution and backend calls must not be attempted before this.
func (s Session) Settled() bool {
	return s.UserID != "" && s.Email != ""
}

// HasRole reports whether the session carries exactly the given role.
func (s Session) HasRole(r Role) bool { return s.Role == r }

// IsAdmin reports whether the session belongs to an admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
