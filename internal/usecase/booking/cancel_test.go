package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/timezone"
)

// ===============================
// Salon cancellation
// ===============================

func TestCancelBySalon_Pending(t *testing.T) {
	repo := newFakeRepo()
	start := timezone.Now().Add(96 * time.Hour)
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start, Booked: true})
	r := seedReservation(repo, domain.StatusPending, start)

	uc := NewCancelBySalon(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), 10, r.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledBySalon), res.Reservation.Status)
	assert.NotNil(t, res.Reservation.CancelledAt)
	assert.True(t, res.SlotReleased)
	assert.False(t, repo.listings[1].Slots[0].Booked)
}

func TestCancelBySalon_Confirmed(t *testing.T) {
	repo := newFakeRepo()
	start := timezone.Now().Add(96 * time.Hour)
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start, Booked: true})
	r := seedReservation(repo, domain.StatusConfirmed, start)

	uc := NewCancelBySalon(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), 10, r.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelledBySalon), res.Reservation.Status)
}

// The cancellation stands even when the slot release fails; the result
// reports the partial outcome instead of rolling back.
func TestCancelBySalon_ReleaseFailureDoesNotRollBack(t *testing.T) {
	repo := newFakeRepo()
	start := timezone.Now().Add(96 * time.Hour)
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start, Booked: true})
	r := seedReservation(repo, domain.StatusConfirmed, start)
	repo.releaseErr = errors.New("connection reset")

	uc := NewCancelBySalon(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), 10, r.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledBySalon), res.Reservation.Status)
	assert.False(t, res.SlotReleased)
	assert.Equal(t, 1, repo.releaseCalls, "release is attempted exactly once, no retry")
	assert.Equal(t, string(domain.StatusCancelledBySalon), repo.reservations[r.ID].Status)
}

func TestCancelBySalon_Terminal(t *testing.T) {
	repo := newFakeRepo()
	r := seedReservation(repo, domain.StatusCancelledByStudent, timezone.Now().Add(96*time.Hour))

	uc := NewCancelBySalon(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 10, r.ID)
	require.Error(t, err)
	assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
}

// ===============================
// Student cancellation
// ===============================

func TestCancelByStudent(t *testing.T) {
	repo := newFakeRepo()
	start := timezone.Now().Add(96 * time.Hour)
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start, Booked: true})
	r := seedReservation(repo, domain.StatusConfirmed, start)

	uc := NewCancelByStudent(repo, testDispatcher())

	res, err := uc.Execute(context.Background(), 5, r.ID, "schedule conflict")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledByStudent), res.Reservation.Status)
	assert.Equal(t, "schedule conflict", res.Reservation.CancelReason)
	assert.True(t, res.SlotReleased)
	assert.False(t, repo.listings[1].Slots[0].Booked)
}

func TestCancelByStudent_ReasonRequired(t *testing.T) {
	repo := newFakeRepo()
	r := seedReservation(repo, domain.StatusConfirmed, timezone.Now().Add(96*time.Hour))

	uc := NewCancelByStudent(repo, testDispatcher())

	for _, reason := range []string{"", "   "} {
		_, err := uc.Execute(context.Background(), 5, r.ID, reason)
		require.Error(t, err)
		assert.Equal(t, "reason_required", httperr.BusinessCode(err))
	}
}

func TestCancelByStudent_WindowClosed(t *testing.T) {
	repo := newFakeRepo()
	r := seedReservation(repo, domain.StatusConfirmed, timezone.Now().Add(24*time.Hour))

	uc := NewCancelByStudent(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 5, r.ID, "changed my mind")
	require.Error(t, err)
	assert.Equal(t, "cancel_window_closed", httperr.BusinessCode(err))

	// No override path: the reservation is untouched.
	assert.Equal(t, string(domain.StatusConfirmed), repo.reservations[r.ID].Status)
	assert.Zero(t, repo.releaseCalls)
}

func TestCancelByStudent_PendingNotCancellable(t *testing.T) {
	repo := newFakeRepo()
	r := seedReservation(repo, domain.StatusPending, timezone.Now().Add(96*time.Hour))

	uc := NewCancelByStudent(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 5, r.ID, "changed my mind")
	require.Error(t, err)
	assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
}

func TestCancelByStudent_WrongStudent(t *testing.T) {
	repo := newFakeRepo()
	r := seedReservation(repo, domain.StatusConfirmed, timezone.Now().Add(96*time.Hour))

	uc := NewCancelByStudent(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 99, r.ID, "reason")
	require.Error(t, err)
	assert.Equal(t, "reservation_not_found", httperr.BusinessCode(err))
}
