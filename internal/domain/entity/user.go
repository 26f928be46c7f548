package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin     = "admin"
	RoleWarehouse = "warehouse"
	RoleStaff     = "staff"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWarehouse, RoleStaff:
		return true
	}
	return false
}

// User represents a system user. Username is unique (storage-level index).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never plaintext after registration
	Email        string
	Role         string // admin, warehouse, staff
	CreatedAt    time.Time
}
