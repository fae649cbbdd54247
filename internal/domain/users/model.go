package users

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account. Comments and profiles hang off it and go away with it.
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"type:varchar(150);not null;uniqueIndex:idx_users_username" json:"username"`
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password *string `json:"-"`
	Role     string  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
