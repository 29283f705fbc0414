package booking

import (
	"context"
	"log"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/notify"
	"github.com/cutmodel/model-match/internal/timezone"
)

// CancelResult separates the transition from its best-effort follow-up:
// the cancellation has succeeded even when the slot release failed.
type CancelResult struct {
	Reservation  *models.Reservation
	SlotReleased bool
}

type CancelBySalon struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelBySalon(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CancelBySalon {
	return &CancelBySalon{
		repo:   repo,
		notify: notify,
	}
}

func (uc *CancelBySalon) Execute(
	ctx context.Context,
	salonID uint,
	reservationID uint,
) (*CancelResult, error) {

	r, err := uc.repo.GetReservationForSalon(ctx, reservationID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanCancelBySalon(domain.Status(r.Status)); err != nil {
		return nil, err
	}

	now := timezone.Now()
	r.Status = string(domain.StatusCancelledBySalon)
	r.CancelledAt = &now

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	released := uc.releaseSlot(ctx, r)

	uc.notify.Dispatch(notify.Event{
		RecipientID:   r.Student.UserID,
		Event:         domain.NotificationEvent(domain.StatusCancelledBySalon),
		ReservationID: &r.ID,
	})

	return &CancelResult{Reservation: r, SlotReleased: released}, nil
}

// releaseSlot is at-most-once with no retry. A failure leaves the slot
// booked under a cancelled reservation; that inconsistency is accepted
// and only logged.
func (uc *CancelBySalon) releaseSlot(ctx context.Context, r *models.Reservation) bool {
	if err := uc.repo.ReleaseSlot(ctx, r.ListingID, r.StartTime); err != nil {
		log.Printf("slot release failed for reservation %d: %v", r.ID, err)
		return false
	}
	return true
}
