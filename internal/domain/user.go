package domain

import "time"

// UserStatus represents lifecycle states for a directory user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a directory record managed from the admin surface.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       Role
	Department string
	Groups     []string
	Status     UserStatus
	LastActive time.Time
}
