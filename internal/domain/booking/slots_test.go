package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutmodel/model-match/internal/httperr"
)

func TestSlotSet_SortsOnConstruction(t *testing.T) {
	s := NewSlotSet([]Slot{
		{StartTime: jst(2025, 1, 12, 10, 0)},
		{StartTime: jst(2025, 1, 10, 10, 0)},
		{StartTime: jst(2025, 1, 11, 10, 0)},
	})

	slots := s.Slots()
	require.Len(t, slots, 3)
	assert.True(t, slots[0].StartTime.Equal(jst(2025, 1, 10, 10, 0)))
	assert.True(t, slots[1].StartTime.Equal(jst(2025, 1, 11, 10, 0)))
	assert.True(t, slots[2].StartTime.Equal(jst(2025, 1, 12, 10, 0)))
}

func TestSlotSet_Add_RejectsDuplicate(t *testing.T) {
	s := NewSlotSet(nil)

	require.NoError(t, s.Add(jst(2025, 1, 10, 10, 0)))

	err := s.Add(jst(2025, 1, 10, 10, 0))
	require.Error(t, err)
	assert.Equal(t, "duplicate_slot", httperr.BusinessCode(err))
	assert.Equal(t, 1, s.Len())
}

func TestSlotSet_Add_KeepsOrder(t *testing.T) {
	s := NewSlotSet([]Slot{{StartTime: jst(2025, 1, 12, 10, 0)}})

	require.NoError(t, s.Add(jst(2025, 1, 10, 10, 0)))

	slots := s.Slots()
	assert.True(t, slots[0].StartTime.Equal(jst(2025, 1, 10, 10, 0)))
	assert.True(t, slots[1].StartTime.Equal(jst(2025, 1, 12, 10, 0)))
}

func TestSlotSet_Remove(t *testing.T) {
	s := NewSlotSet([]Slot{
		{StartTime: jst(2025, 1, 10, 10, 0)},
		{StartTime: jst(2025, 1, 11, 10, 0), Booked: true},
	})

	// Unknown instant.
	err := s.Remove(jst(2025, 1, 15, 10, 0))
	require.Error(t, err)
	assert.Equal(t, "slot_not_found", httperr.BusinessCode(err))

	// Booked slot stays put and the set is untouched.
	err = s.Remove(jst(2025, 1, 11, 10, 0))
	require.Error(t, err)
	assert.Equal(t, "slot_booked", httperr.BusinessCode(err))
	assert.Equal(t, 2, s.Len())

	// Free slot is removable.
	require.NoError(t, s.Remove(jst(2025, 1, 10, 10, 0)))
	assert.Equal(t, 1, s.Len())
}

func TestValidateEdit_BookedSlotMustSurvive(t *testing.T) {
	original := []Slot{
		{StartTime: jst(2025, 1, 10, 10, 0), Booked: true},
		{StartTime: jst(2025, 1, 12, 10, 0)},
	}

	// Dropping the free slot while keeping the booked one is fine.
	err := ValidateEdit(original, []Slot{
		{StartTime: jst(2025, 1, 10, 10, 0)},
	})
	assert.NoError(t, err)

	// Dropping the booked slot rejects the whole submission.
	err = ValidateEdit(original, []Slot{
		{StartTime: jst(2025, 1, 12, 10, 0)},
		{StartTime: jst(2025, 1, 14, 10, 0)},
	})
	require.Error(t, err)
	assert.Equal(t, "booked_slot_removed", httperr.BusinessCode(err))
}

func TestCarryBookedFlags(t *testing.T) {
	original := []Slot{
		{StartTime: jst(2025, 1, 10, 10, 0), Booked: true},
		{StartTime: jst(2025, 1, 12, 10, 0)},
	}

	// The edit re-submits instants without booked flags; flags are
	// restored from the original and the result comes back sorted.
	out := CarryBookedFlags(original, []Slot{
		{StartTime: jst(2025, 1, 14, 10, 0)},
		{StartTime: jst(2025, 1, 10, 10, 0)},
	})

	require.Len(t, out, 2)
	assert.True(t, out[0].StartTime.Equal(jst(2025, 1, 10, 10, 0)))
	assert.True(t, out[0].Booked)
	assert.True(t, out[1].StartTime.Equal(jst(2025, 1, 14, 10, 0)))
	assert.False(t, out[1].Booked)
}

func TestDerivedDisplaySets(t *testing.T) {
	now := jst(2025, 1, 1, 12, 0)

	slots := []Slot{
		{StartTime: now.Add(72 * time.Hour)},               // bookable
		{StartTime: now.Add(24 * time.Hour)},               // consult only
		{StartTime: now.Add(72 * time.Hour), Booked: true}, // claimed
		{StartTime: now.Add(-time.Hour)},                   // past
	}

	bookable := BookableSlots(slots, now)
	require.Len(t, bookable, 1)
	assert.True(t, bookable[0].StartTime.Equal(now.Add(72*time.Hour)))
	assert.False(t, bookable[0].Booked)

	consult := ConsultSlots(slots, now)
	require.Len(t, consult, 1)
	assert.True(t, consult[0].StartTime.Equal(now.Add(24*time.Hour)))
}
