package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Canonical role names. Stored lowercase.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string `gorm:"uniqueIndex:uq_users_username;not null" json:"username"`
	Email     string `gorm:"uniqueIndex:uq_users_email;not null" json:"email"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Bio       string `gorm:"size:500" json:"bio"`
	Role      string `gorm:"default:'user';not null" json:"role"`
	IsStaff   bool   `gorm:"column:is_staff;not null;default:false" json:"-"`
	IsActive  bool   `gorm:"column:is_active;not null;default:true" json:"-"`

	// bcrypt hash of the emailed confirmation code; nil once consumed
	ConfirmationCodeHash *string `gorm:"column:confirmation_code_hash" json:"-"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

// IsAdmin reports whether the user holds admin privileges, either through
// the admin role or the staff flag.
func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin || user.IsStaff
}

func (user *User) IsModerator() bool {
	return user.Role == RoleModerator
}

func (User) TableName() string {
	return "users"
}
