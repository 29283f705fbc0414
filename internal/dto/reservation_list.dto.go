package dto

import "time"

type MessagePreviewDTO struct {
	ID         uint      `json:"id"`
	Body       string    `json:"body"`
	SenderRole string    `json:"sender_role"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationListDTO struct {
	ID           uint      `json:"id"`
	ListingID    uint      `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	SalonName    string    `json:"salon_name"`
	StudentName  string    `json:"student_name"`
	StartTime    time.Time `json:"start_time"`
	Status       string    `json:"status"`

	LatestMessage *MessagePreviewDTO `json:"latest_message,omitempty"`
	Unread        bool               `json:"unread"`
}
