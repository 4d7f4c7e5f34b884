// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Role values carried by the identity provider's session token.
const (
	RoleStudent  = "student"
	RoleEducator = "educator"
)

// User represents a marketplace account. The ID is issued by the identity
// provider and is the primary key; the row is created lazily on the first
// authenticated request that needs it.
type User struct {
	ID        string    `json:"id"`         // Identity-provider-issued user ID.
	Name      string    `json:"name"`       // Display name from the provider profile.
	Email     string    `json:"email"`      // Contact email from the provider profile.
	ImageURL  string    `json:"image_url"`  // Avatar URL, may be empty.
	Role      string    `json:"role"`       // "student" or "educator".
	CreatedAt time.Time `json:"created_at"` // Timestamp of the first authenticated request.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last profile sync.
}

// IsEducator reports whether the account may manage courses.
func (u *User) IsEducator() bool {
	return u.Role == RoleEducator
}
