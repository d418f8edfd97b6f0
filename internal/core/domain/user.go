package domain

import "strings"

// Role is the access tier attached to a user account. Roles form a closed
// enumeration; anything arriving from the outside is normalised through
// ParseRole before it is stored or compared.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleCustomer Role = "Customer"
)

// ParseRole normalises a role string case-insensitively. An empty input
// yields the default RoleCustomer; anything outside the enumeration is
// rejected with ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RoleCustomer, nil
	case "admin":
		return RoleAdmin, nil
	case "manager":
		return RoleManager, nil
	case "customer":
		return RoleCustomer, nil
	default:
		return "", ErrInvalidRole
	}
}

// IsStaff reports whether the role may manage dishes and tables.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager
}

// User models an account in the system.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username     string `gorm:"uniqueIndex;not null"      json:"username"`
	Email        string `gorm:"uniqueIndex;not null"      json:"email"`
	PasswordHash string `gorm:"not null"                  json:"-"`
	Role         Role   `gorm:"not null;default:Customer" json:"role"`
}
