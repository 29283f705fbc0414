package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/notify"
)

// fakeRepo is an in-memory stand-in for the gorm repository, with
// injectable failures for the best-effort paths.
type fakeRepo struct {
	listings     map[uint]*models.Listing
	reservations map[uint]*models.Reservation
	messages     map[uint]models.ReservationMessage

	nextReservationID uint

	replacedSlots []domain.Slot

	releaseErr   error
	releaseCalls int
	updateErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		listings:          make(map[uint]*models.Listing),
		reservations:      make(map[uint]*models.Reservation),
		messages:          make(map[uint]models.ReservationMessage),
		nextReservationID: 1,
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return l, nil
}

func (f *fakeRepo) GetListingForSalon(ctx context.Context, listingID, salonID uint) (*models.Listing, error) {
	l, ok := f.listings[listingID]
	if !ok || l.SalonID != salonID {
		return nil, errors.New("record not found")
	}
	return l, nil
}

func (f *fakeRepo) ReplaceSlots(ctx context.Context, listingID uint, slots []domain.Slot) error {
	l, ok := f.listings[listingID]
	if !ok {
		return errors.New("record not found")
	}

	f.replacedSlots = append([]domain.Slot(nil), slots...)

	l.Slots = nil
	for _, s := range slots {
		l.Slots = append(l.Slots, models.ListingSlot{
			ListingID: listingID,
			StartTime: s.StartTime,
			Booked:    s.Booked,
		})
	}
	return nil
}

func (f *fakeRepo) CreateReservation(ctx context.Context, r *models.Reservation, claimSlot bool) error {
	if claimSlot {
		l, ok := f.listings[r.ListingID]
		if !ok {
			return errors.New("record not found")
		}

		claimed := false
		for i := range l.Slots {
			if l.Slots[i].StartTime.Equal(r.StartTime) {
				if l.Slots[i].Booked {
					return httperr.ErrBusiness("slot_already_booked")
				}
				l.Slots[i].Booked = true
				claimed = true
				break
			}
		}
		if !claimed {
			return httperr.ErrBusiness("invalid_requested_time")
		}
	}

	r.ID = f.nextReservationID
	f.nextReservationID++

	stored := *r
	f.reservations[r.ID] = &stored
	return nil
}

func (f *fakeRepo) GetReservationForSalon(ctx context.Context, reservationID, salonID uint) (*models.Reservation, error) {
	r, ok := f.reservations[reservationID]
	if !ok || r.SalonID != salonID {
		return nil, errors.New("record not found")
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) GetReservationForStudent(ctx context.Context, reservationID, studentID uint) (*models.Reservation, error) {
	r, ok := f.reservations[reservationID]
	if !ok || r.StudentID != studentID {
		return nil, errors.New("record not found")
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}

	stored := *r
	f.reservations[r.ID] = &stored
	return nil
}

func (f *fakeRepo) ReleaseSlot(ctx context.Context, listingID uint, start time.Time) error {
	f.releaseCalls++
	if f.releaseErr != nil {
		return f.releaseErr
	}

	l, ok := f.listings[listingID]
	if !ok {
		return errors.New("record not found")
	}
	for i := range l.Slots {
		if l.Slots[i].StartTime.Equal(start) {
			l.Slots[i].Booked = false
			return nil
		}
	}
	return httperr.ErrBusiness("slot_not_found")
}

func (f *fakeRepo) ListReservationsByStudent(ctx context.Context, studentID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.StudentID == studentID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListReservationsBySalon(ctx context.Context, salonID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.SalonID == salonID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) LatestMessages(ctx context.Context, reservationIDs []uint) (map[uint]models.ReservationMessage, error) {
	out := make(map[uint]models.ReservationMessage)
	for _, id := range reservationIDs {
		if msg, ok := f.messages[id]; ok {
			out[id] = msg
		}
	}
	return out, nil
}

// discardSink swallows notifications; delivery is not under test here.
type discardSink struct{}

func (discardSink) Write(recipientID uint, event string, reservationID *uint, payload any) error {
	return nil
}

func testDispatcher() *notify.Dispatcher {
	return notify.NewDispatcher(discardSink{})
}
