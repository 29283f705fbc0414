package booking

import (
	"sort"
	"time"

	"github.com/cutmodel/model-match/internal/httperr"
)

// Slot is the editor-side value of a listing's availability entry.
type Slot struct {
	StartTime time.Time
	Booked    bool
}

func (s Slot) Bookable(now time.Time) bool {
	return !s.Booked && IsFuture(s.StartTime, now) && IsBeforeCutoff(s.StartTime, now, BookingWindowHours)
}

// ConsultOnly: still in the future but past the booking cutoff, so only
// chat negotiation is offered.
func (s Slot) ConsultOnly(now time.Time) bool {
	return !s.Booked && InConsultZone(s.StartTime, now, BookingWindowHours)
}

// ===============================
// Slot set editor
// ===============================

// SlotSet keeps a listing's slots sorted ascending by instant with set
// semantics on the instant. Downstream "next available" logic assumes
// the sorted order.
type SlotSet struct {
	slots []Slot
}

func NewSlotSet(slots []Slot) SlotSet {
	s := SlotSet{slots: append([]Slot(nil), slots...)}
	s.sortAsc()
	return s
}

func (s *SlotSet) sortAsc() {
	sort.Slice(s.slots, func(i, j int) bool {
		return s.slots[i].StartTime.Before(s.slots[j].StartTime)
	})
}

func (s *SlotSet) Slots() []Slot {
	return append([]Slot(nil), s.slots...)
}

func (s *SlotSet) Len() int {
	return len(s.slots)
}

func (s *SlotSet) indexOf(t time.Time) int {
	for i, sl := range s.slots {
		if sl.StartTime.Equal(t) {
			return i
		}
	}
	return -1
}

// Add inserts an unbooked slot at the given instant. Duplicate instants
// are rejected without mutating the set.
func (s *SlotSet) Add(t time.Time) error {
	if s.indexOf(t) >= 0 {
		return httperr.ErrBusiness("duplicate_slot")
	}

	s.slots = append(s.slots, Slot{StartTime: t})
	s.sortAsc()
	return nil
}

// Remove drops the slot at the given instant. Booked slots cannot be
// removed.
func (s *SlotSet) Remove(t time.Time) error {
	i := s.indexOf(t)
	if i < 0 {
		return httperr.ErrBusiness("slot_not_found")
	}
	if s.slots[i].Booked {
		return httperr.ErrBusiness("slot_booked")
	}

	s.slots = append(s.slots[:i], s.slots[i+1:]...)
	return nil
}

// ===============================
// Edit submission guard
// ===============================

// ValidateEdit rejects an edit that drops any instant booked in the
// original collection. The whole submission fails; nothing is partially
// applied.
func ValidateEdit(original, edited []Slot) error {
	for _, o := range original {
		if !o.Booked {
			continue
		}

		found := false
		for _, e := range edited {
			if e.StartTime.Equal(o.StartTime) {
				found = true
				break
			}
		}
		if !found {
			return httperr.ErrBusiness("booked_slot_removed")
		}
	}
	return nil
}

// CarryBookedFlags returns the edited slots sorted ascending with the
// booked flag carried over from the original collection, so an edit can
// never silently unbook a claimed slot.
func CarryBookedFlags(original, edited []Slot) []Slot {
	out := make([]Slot, 0, len(edited))
	for _, e := range edited {
		slot := Slot{StartTime: e.StartTime}
		for _, o := range original {
			if o.StartTime.Equal(e.StartTime) {
				slot.Booked = o.Booked
				break
			}
		}
		out = append(out, slot)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// ===============================
// Derived display sets
// ===============================

func BookableSlots(slots []Slot, now time.Time) []Slot {
	var out []Slot
	for _, s := range slots {
		if s.Bookable(now) {
			out = append(out, s)
		}
	}
	return out
}

func ConsultSlots(slots []Slot, now time.Time) []Slot {
	var out []Slot
	for _, s := range slots {
		if s.ConsultOnly(now) {
			out = append(out, s)
		}
	}
	return out
}
