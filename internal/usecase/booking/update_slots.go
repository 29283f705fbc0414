package booking

import (
	"context"
	"time"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
)

type UpdateListingSlots struct {
	repo domain.Repository
}

func NewUpdateListingSlots(repo domain.Repository) *UpdateListingSlots {
	return &UpdateListingSlots{repo: repo}
}

// Execute replaces a listing's slot collection with the given instants.
// The edit is all-or-nothing: a duplicate instant or a dropped booked
// slot rejects the whole submission and the stored collection stays
// untouched.
func (uc *UpdateListingSlots) Execute(
	ctx context.Context,
	salonID uint,
	listingID uint,
	instants []time.Time,
) ([]domain.Slot, error) {

	listing, err := uc.repo.GetListingForSalon(ctx, listingID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("listing_not_found")
	}

	original := make([]domain.Slot, 0, len(listing.Slots))
	for _, s := range listing.Slots {
		original = append(original, domain.Slot{StartTime: s.StartTime, Booked: s.Booked})
	}

	edited := domain.NewSlotSet(nil)
	for _, t := range instants {
		if err := edited.Add(t); err != nil {
			return nil, err
		}
	}

	if err := domain.ValidateEdit(original, edited.Slots()); err != nil {
		return nil, err
	}

	// A listing must stay bookable one way or another.
	if edited.Len() == 0 && listing.FlexibleSchedule == "" {
		return nil, httperr.ErrBusiness("listing_needs_schedule")
	}

	final := domain.CarryBookedFlags(original, edited.Slots())

	if err := uc.repo.ReplaceSlots(ctx, listing.ID, final); err != nil {
		return nil, err
	}

	return final, nil
}
