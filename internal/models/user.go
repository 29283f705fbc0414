package models

import "time"

const (
	RoleStudent = "student"
	RoleSalon   = "salon"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`

	// Raw signup metadata, kept so a missing profile row can be
	// re-provisioned after authentication.
	SignupName   string `gorm:"size:100" json:"-"`
	SignupSchool string `gorm:"size:100" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
