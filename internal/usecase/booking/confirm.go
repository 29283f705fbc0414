package booking

import (
	"context"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/notify"
	"github.com/cutmodel/model-match/internal/timezone"
)

type ConfirmReservation struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewConfirmReservation(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:   repo,
		notify: notify,
	}
}

func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	salonID uint,
	reservationID uint,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservationForSalon(ctx, reservationID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanConfirm(domain.Status(r.Status)); err != nil {
		return nil, err
	}

	now := timezone.Now()
	r.Status = string(domain.StatusConfirmed)
	r.ConfirmedAt = &now

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		RecipientID:   r.Student.UserID,
		Event:         domain.NotificationEvent(domain.StatusConfirmed),
		ReservationID: &r.ID,
	})

	return r, nil
}
