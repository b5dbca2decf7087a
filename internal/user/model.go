package user

import "time"

type Role string

const (
	RoleUser   Role = "USER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

type User struct {
	ID        uint
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
}
