package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RecipientID   uint   `gorm:"index;not null" json:"recipient_id"`
	Event         string `gorm:"size:50;not null" json:"event"`
	ReservationID *uint  `json:"reservation_id"`
	Payload       string `gorm:"type:text" json:"payload"`

	CreatedAt time.Time `json:"created_at"`
}
