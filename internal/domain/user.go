package domain

import "time"

type UserRole string

const (
	// RoleNone is the default for every user record; it grants nothing.
	RoleNone  UserRole = ""
	RoleAdmin UserRole = "admin"
)

// IsAdmin is the only role check the rest of the code is allowed to make.
func (r UserRole) IsAdmin() bool { return r == RoleAdmin }

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
