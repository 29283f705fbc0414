package models

import "time"

type ListingSlot struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ListingID uint `gorm:"index:idx_listing_slot,unique;not null" json:"listing_id"`

	StartTime time.Time `gorm:"index:idx_listing_slot,unique;not null" json:"start_time"`
	Booked    bool      `gorm:"default:false" json:"booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
