package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// NormalizeRole maps arbitrary input to a valid role. Anything that is
// not exactly ADMIN becomes USER, matching the admin create/edit forms.
func NormalizeRole(raw string) UserRole {
	if raw == string(UserRoleAdmin) {
		return UserRoleAdmin
	}
	return UserRoleUser
}

type User struct {
	ID           int64
	Email        string
	PasswordHash []byte
	Name         *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
