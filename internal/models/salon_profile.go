package models

import "time"

type SalonProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Station     string `gorm:"size:100" json:"station"`
	Phone       string `gorm:"size:20" json:"phone"`
	Description string `gorm:"size:1000" json:"description"`
	PhotoURL    string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
