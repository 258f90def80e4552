// Package directory is the read side of the external user store; the core
// only resolves display names for approval listings.
package directory

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	Role      string    `gorm:"column:role;size:16;not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
