package model

import "time"

// UserStatus is the backend moderation state of a user account.
type UserStatus string

const (
	UserActive UserStatus = "active"
	UserFraud  UserStatus = "fraud"
)

// User is a marketplace user record as served by the backend.
type User struct {
	ID        string     `json:"_id"`
	Name      string     `json:"displayName"`
	Email     string     `json:"email"`
	PhotoURL  string     `json:"photoURL,omitempty"`
	Role      string     `json:"role"`
	Status    UserStatus `json:"status"`
	ChefID    string     `json:"chefId,omitempty"`
	Address   string     `json:"address,omitempty"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
}
