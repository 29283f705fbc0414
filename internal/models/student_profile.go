package models

import "time"

type StudentProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name       string `gorm:"size:100;not null" json:"name"`
	School     string `gorm:"size:100" json:"school"`
	HairLength string `gorm:"size:20" json:"hair_length"`
	PhotoURL   string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
