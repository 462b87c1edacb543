package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrForbidden            = errors.New("access forbidden")
)

// User models a registered account. Email is unique (enforced by a unique
// index at the persistence layer) and the password is only ever stored as a
// bcrypt hash.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	Phone            string    `json:"phone,omitempty"`
	College          string    `json:"college,omitempty"`
	ProfilePicture   string    `json:"profile_picture,omitempty"`
	RegisteredEvents []string  `json:"registered_events,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
