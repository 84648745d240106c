package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dguedes/marmitaria-api/internal/domain/enum"
)

// User is a staff member: a counter attendant or an administrator.
// Attendants authenticate with their short login code only; admins also
// carry a bcrypt password hash.
type User struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Code      string        `gorm:"size:50;unique;not null" json:"code"`
	Name      string        `gorm:"size:255;not null" json:"name"`
	Role      enum.UserRole `gorm:"size:20;default:'attendant'" json:"role"`
	Password  *string       `gorm:"size:255" json:"-"`
	Active    bool          `gorm:"default:true" json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == enum.RoleAdmin
}
