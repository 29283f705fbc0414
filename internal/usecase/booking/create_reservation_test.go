package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/timezone"
)

func slotInput(t time.Time) (date, hhmm string) {
	t = t.In(timezone.JST)
	return t.Format("2006-01-02"), t.Format("15:04")
}

// futureSlot returns an instant comfortably outside the 48h cutoff,
// rounded to the minute so the request round-trips through the
// date/time strings exactly.
func futureSlot() time.Time {
	return timezone.Now().Add(96 * time.Hour).Truncate(time.Minute)
}

func seedListing(repo *fakeRepo, slots ...models.ListingSlot) *models.Listing {
	l := &models.Listing{
		ID:      1,
		SalonID: 10,
		Salon:   models.SalonProfile{ID: 10, UserID: 100, Name: "Salon"},
		Title:   "Cut model wanted",
		Status:  models.ListingActive,
		Slots:   slots,
	}
	repo.listings[l.ID] = l
	return l
}

func TestCreateReservation_ClaimsSlot(t *testing.T) {
	repo := newFakeRepo()
	start := futureSlot()
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start})

	uc := NewCreateReservation(repo, testDispatcher())

	date, hhmm := slotInput(start)
	r, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1,
		StudentID: 5,
		Date:      date,
		Time:      hhmm,
		Message:   "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), r.Status)
	assert.True(t, r.StartTime.Equal(start))
	assert.Equal(t, uint(10), r.SalonID)

	// The slot is claimed atomically with the insert.
	assert.True(t, repo.listings[1].Slots[0].Booked)
}

func TestCreateReservation_SlotAlreadyBooked(t *testing.T) {
	repo := newFakeRepo()
	start := futureSlot()
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start, Booked: true})

	uc := NewCreateReservation(repo, testDispatcher())

	date, hhmm := slotInput(start)
	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})

	require.Error(t, err)
	assert.Equal(t, "slot_already_booked", httperr.BusinessCode(err))
}

func TestCreateReservation_SecondClaimLoses(t *testing.T) {
	repo := newFakeRepo()
	start := futureSlot()
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start})

	uc := NewCreateReservation(repo, testDispatcher())
	date, hhmm := slotInput(start)

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})
	require.NoError(t, err)

	// The repository-level claim catches the race the pre-check missed.
	_, err = uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 6, Date: date, Time: hhmm,
	})
	require.Error(t, err)
	assert.Equal(t, "slot_already_booked", httperr.BusinessCode(err))
}

func TestCreateReservation_WindowClosed(t *testing.T) {
	repo := newFakeRepo()
	start := timezone.Now().Add(24 * time.Hour).Truncate(time.Minute)
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: start})

	uc := NewCreateReservation(repo, testDispatcher())

	date, hhmm := slotInput(start)
	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})

	require.Error(t, err)
	assert.Equal(t, "booking_window_closed", httperr.BusinessCode(err))
}

func TestCreateReservation_FlexibleProposal(t *testing.T) {
	repo := newFakeRepo()
	l := seedListing(repo)
	l.FlexibleSchedule = "weekday evenings"

	uc := NewCreateReservation(repo, testDispatcher())

	// Inside the 48h zone is fine for a proposal; no slot is claimed.
	start := timezone.Now().Add(24 * time.Hour).Truncate(time.Minute)
	date, hhmm := slotInput(start)
	r, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), r.Status)
}

func TestCreateReservation_NoMatchingSlotNoFlexible(t *testing.T) {
	repo := newFakeRepo()
	seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: futureSlot()})

	uc := NewCreateReservation(repo, testDispatcher())

	other := futureSlot().Add(time.Hour)
	date, hhmm := slotInput(other)
	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})

	require.Error(t, err)
	assert.Equal(t, "invalid_requested_time", httperr.BusinessCode(err))
}

func TestCreateReservation_PastInstant(t *testing.T) {
	repo := newFakeRepo()
	l := seedListing(repo)
	l.FlexibleSchedule = "anytime"

	uc := NewCreateReservation(repo, testDispatcher())

	start := timezone.Now().Add(-24 * time.Hour).Truncate(time.Minute)
	date, hhmm := slotInput(start)
	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})

	require.Error(t, err)
	assert.Equal(t, "invalid_requested_time", httperr.BusinessCode(err))
}

func TestCreateReservation_ClosedListing(t *testing.T) {
	repo := newFakeRepo()
	l := seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: futureSlot()})
	l.Status = models.ListingClosed

	uc := NewCreateReservation(repo, testDispatcher())

	date, hhmm := slotInput(futureSlot())
	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})

	require.Error(t, err)
	assert.Equal(t, "listing_closed", httperr.BusinessCode(err))
}

func TestCreateReservation_DeadlinePassed(t *testing.T) {
	repo := newFakeRepo()
	l := seedListing(repo, models.ListingSlot{ListingID: 1, StartTime: futureSlot()})
	deadline := timezone.Now().AddDate(0, 0, -2)
	l.Deadline = &deadline

	uc := NewCreateReservation(repo, testDispatcher())

	date, hhmm := slotInput(futureSlot())
	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 1, StudentID: 5, Date: date, Time: hhmm,
	})

	require.Error(t, err)
	assert.Equal(t, "listing_closed", httperr.BusinessCode(err))
}

func TestCreateReservation_ListingNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, testDispatcher())

	date, hhmm := slotInput(futureSlot())
	_, err := uc.Execute(context.Background(), CreateReservationInput{
		ListingID: 99, StudentID: 5, Date: date, Time: hhmm,
	})

	require.Error(t, err)
	assert.Equal(t, "listing_not_found", httperr.BusinessCode(err))
}
