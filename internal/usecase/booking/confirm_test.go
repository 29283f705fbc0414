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

func seedReservation(repo *fakeRepo, status domain.Status, start time.Time) *models.Reservation {
	r := &models.Reservation{
		ID:        repo.nextReservationID,
		ListingID: 1,
		StudentID: 5,
		Student:   models.StudentProfile{ID: 5, UserID: 50, Name: "Student"},
		SalonID:   10,
		Salon:     models.SalonProfile{ID: 10, UserID: 100, Name: "Salon"},
		StartTime: start,
		Status:    string(status),
	}
	repo.nextReservationID++
	repo.reservations[r.ID] = r
	return r
}

func TestConfirmReservation(t *testing.T) {
	repo := newFakeRepo()
	r := seedReservation(repo, domain.StatusPending, timezone.Now().Add(96*time.Hour))

	uc := NewConfirmReservation(repo, testDispatcher())

	got, err := uc.Execute(context.Background(), 10, r.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	require.NotNil(t, got.ConfirmedAt)
	assert.Equal(t, string(domain.StatusConfirmed), repo.reservations[r.ID].Status)
}

func TestConfirmReservation_WrongSalon(t *testing.T) {
	repo := newFakeRepo()
	r := seedReservation(repo, domain.StatusPending, timezone.Now().Add(96*time.Hour))

	uc := NewConfirmReservation(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 99, r.ID)
	require.Error(t, err)
	assert.Equal(t, "reservation_not_found", httperr.BusinessCode(err))
}

func TestConfirmReservation_NotPending(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConfirmReservation(repo, testDispatcher())

	for _, s := range []domain.Status{domain.StatusConfirmed, domain.StatusCancelledBySalon, domain.StatusCancelledByStudent} {
		r := seedReservation(repo, s, timezone.Now().Add(96*time.Hour))

		_, err := uc.Execute(context.Background(), 10, r.ID)
		require.Error(t, err, "status %s", s)
		assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
	}
}
