package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // HR / payroll administrator - full access
	RoleStaff Role = "staff" // Regular employee - self-service only
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage payroll and master data
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
