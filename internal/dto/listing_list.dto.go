package dto

import "time"

type ListingListDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	SalonName   string `json:"salon_name"`
	Station     string `json:"station"`
	MenuTags    []string `json:"menu_tags"`
	Gender      string `json:"gender"`
	HairLength  string `json:"hair_length"`
	HasReward   bool   `json:"has_reward"`
	RewardText  string `json:"reward_text"`
	PhotoURL    string `json:"photo_url"`

	Deadline *time.Time `json:"deadline"`

	// Derived display sets, computed against the request clock.
	BookableSlots    []time.Time `json:"bookable_slots"`
	ConsultSlots     []time.Time `json:"consult_slots"`
	FlexibleSchedule string      `json:"flexible_schedule"`
}
