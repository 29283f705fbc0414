package booking

import (
	"time"

	"github.com/cutmodel/model-match/internal/models"
)

// ListingFilter composes the public-feed predicates. Filters are
// independent and AND-combined; a zero value matches everything.
type ListingFilter struct {
	Menus         []string
	Gender        string
	AvailableOnly bool
}

func (f ListingFilter) Match(l *models.Listing, now time.Time) bool {
	if !f.matchMenus(l) {
		return false
	}
	if !f.matchGender(l) {
		return false
	}
	if f.AvailableOnly && !HasBookableOption(l, now) {
		return false
	}
	return true
}

func (f ListingFilter) matchMenus(l *models.Listing) bool {
	if len(f.Menus) == 0 {
		return true
	}

	for _, want := range f.Menus {
		for _, tag := range l.MenuTagList() {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func (f ListingFilter) matchGender(l *models.Listing) bool {
	if f.Gender == "" || f.Gender == models.GenderAny {
		return true
	}
	return l.Gender == f.Gender
}

// HasBookableOption: at least one directly bookable slot, or flexible
// scheduling text as the chat-negotiation fallback. Consult-zone slots
// do not count: the listing is visible but not "available".
func HasBookableOption(l *models.Listing, now time.Time) bool {
	if l.Deadline != nil && IsDeadlinePassed(*l.Deadline, now) {
		return false
	}

	for _, s := range l.Slots {
		slot := Slot{StartTime: s.StartTime, Booked: s.Booked}
		if slot.Bookable(now) {
			return true
		}
	}
	return l.FlexibleSchedule != ""
}
