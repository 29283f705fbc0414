package models

import "time"

type ReservationMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint        `gorm:"index;not null" json:"reservation_id"`
	Reservation   Reservation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SenderID   uint   `gorm:"not null" json:"sender_id"`
	SenderRole string `gorm:"size:20;not null" json:"sender_role"`

	Body string `gorm:"size:2000;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}
