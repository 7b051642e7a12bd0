package model

import (
	"time"

	"askonline_backend/internals/constants"
)

// UserModel represents the users table.
type UserModel struct {
	UserID       string    `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	Email        string    `gorm:"column:email;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}
