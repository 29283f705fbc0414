package booking

import (
	"context"
	"log"
	"strings"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/notify"
	"github.com/cutmodel/model-match/internal/timezone"
)

type CancelByStudent struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelByStudent(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CancelByStudent {
	return &CancelByStudent{
		repo:   repo,
		notify: notify,
	}
}

func (uc *CancelByStudent) Execute(
	ctx context.Context,
	studentID uint,
	reservationID uint,
	reason string,
) (*CancelResult, error) {

	if strings.TrimSpace(reason) == "" {
		return nil, httperr.ErrBusiness("reason_required")
	}

	r, err := uc.repo.GetReservationForStudent(ctx, reservationID, studentID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanCancelByStudent(domain.Status(r.Status)); err != nil {
		return nil, err
	}

	// Strictly more than 48h before the reserved instant, no override.
	// Past the cutoff the student has to reach the salon through chat.
	now := timezone.Now()
	if !domain.IsBeforeCutoff(r.StartTime, now, domain.BookingWindowHours) {
		return nil, httperr.ErrBusiness("cancel_window_closed")
	}

	r.Status = string(domain.StatusCancelledByStudent)
	r.CancelReason = reason
	r.CancelledAt = &now

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	released := true
	if err := uc.repo.ReleaseSlot(ctx, r.ListingID, r.StartTime); err != nil {
		log.Printf("slot release failed for reservation %d: %v", r.ID, err)
		released = false
	}

	uc.notify.Dispatch(notify.Event{
		RecipientID:   r.Salon.UserID,
		Event:         domain.NotificationEvent(domain.StatusCancelledByStudent),
		ReservationID: &r.ID,
	})

	return &CancelResult{Reservation: r, SlotReleased: released}, nil
}
