package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ListingID uint    `gorm:"index;not null" json:"listing_id"`
	Listing   Listing `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"listing"`

	StudentID uint           `gorm:"index;not null" json:"student_id"`
	Student   StudentProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student"`

	SalonID uint         `gorm:"index;not null" json:"salon_id"`
	Salon   SalonProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"salon"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	Message   string    `gorm:"size:500" json:"message"`

	Status       string `gorm:"size:30;default:'pending'" json:"status"`
	CancelReason string `gorm:"size:500" json:"cancel_reason"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
