package domain

import "time"

type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleManager UserRole = "MANAGER"
	RoleAdmin   UserRole = "ADMIN"
)

type User struct {
	ID        string
	Email     string
	Name      string
	Phone     string
	Role      UserRole
	CreatedAt time.Time
}

// IsStaff reports whether the user may act on other users' orders.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return "Пользователь"
}
