package booking

import (
	"context"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/notify"
	"github.com/cutmodel/model-match/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ListingID uint
	StudentID uint

	Date    string // YYYY-MM-DD
	Time    string // HH:mm
	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:   repo,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	listing, err := uc.repo.GetListing(ctx, in.ListingID)
	if err != nil {
		return nil, httperr.ErrBusiness("listing_not_found")
	}

	now := timezone.Now()

	if listing.Status != models.ListingActive {
		return nil, httperr.ErrBusiness("listing_closed")
	}
	if listing.Deadline != nil && domain.IsDeadlinePassed(*listing.Deadline, now) {
		return nil, httperr.ErrBusiness("listing_closed")
	}

	// Requested instant is always interpreted in JST.
	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_requested_time")
	}
	if !domain.IsFuture(start, now) {
		return nil, httperr.ErrBusiness("invalid_requested_time")
	}

	// A request against a fixed slot claims it atomically; a request on a
	// flexible-schedule listing carries the instant as a proposal only.
	claimSlot := false
	matched := false
	for _, s := range listing.Slots {
		if s.StartTime.Equal(start) {
			matched = true
			if s.Booked {
				return nil, httperr.ErrBusiness("slot_already_booked")
			}
			break
		}
	}

	switch {
	case matched:
		if !domain.IsBeforeCutoff(start, now, domain.BookingWindowHours) {
			return nil, httperr.ErrBusiness("booking_window_closed")
		}
		claimSlot = true
	case listing.FlexibleSchedule != "":
		claimSlot = false
	default:
		return nil, httperr.ErrBusiness("invalid_requested_time")
	}

	r := &models.Reservation{
		ListingID: listing.ID,
		StudentID: in.StudentID,
		SalonID:   listing.SalonID,
		StartTime: start,
		Message:   in.Message,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, r, claimSlot); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		RecipientID:   listing.Salon.UserID,
		Event:         domain.NotificationEvent(domain.StatusPending),
		ReservationID: &r.ID,
	})

	return r, nil
}
