package models

import (
	"strings"
	"time"
)

const (
	ListingActive = "active"
	ListingClosed = "closed"
)

// Requirement enums. "any"/"none" mean the listing does not restrict on
// that attribute.
const (
	GenderAny    = "any"
	GenderFemale = "female"
	GenderMale   = "male"

	HairLengthAny    = "any"
	HairLengthShort  = "short"
	HairLengthMedium = "medium"
	HairLengthLong   = "long"

	ExperienceAny   = "any"
	ExperienceFirst = "first_time_ok"

	PhotoUseNone     = "none"
	PhotoUseRequired = "required"
)

type Listing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint         `gorm:"index;not null" json:"salon_id"`
	Salon   SalonProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"salon"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:2000" json:"description"`

	// Comma-separated menu tags (cut, color, perm, treatment, ...).
	MenuTags string `gorm:"size:255;not null" json:"menu_tags"`

	Gender     string `gorm:"size:20;default:'any'" json:"gender"`
	HairLength string `gorm:"size:20;default:'any'" json:"hair_length"`
	Experience string `gorm:"size:20;default:'any'" json:"experience"`
	PhotoUse   string `gorm:"size:20;default:'none'" json:"photo_use"`

	HasReward  bool   `gorm:"default:false" json:"has_reward"`
	RewardText string `gorm:"size:255" json:"reward_text"`

	// Free-text scheduling fallback for listings without fixed slots.
	FlexibleSchedule string `gorm:"size:500" json:"flexible_schedule"`

	Deadline *time.Time `json:"deadline"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	Slots []ListingSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Listing) MenuTagList() []string {
	if l.MenuTags == "" {
		return nil
	}

	var tags []string
	for _, t := range strings.Split(l.MenuTags, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func JoinMenuTags(tags []string) string {
	var clean []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}
