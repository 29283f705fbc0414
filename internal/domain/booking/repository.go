package booking

import (
	"context"
	"time"

	"github.com/cutmodel/model-match/internal/models"
)

type Repository interface {
	// -------- Listing --------
	GetListing(
		ctx context.Context,
		id uint,
	) (*models.Listing, error)

	GetListingForSalon(
		ctx context.Context,
		listingID uint,
		salonID uint,
	) (*models.Listing, error)

	// ReplaceSlots swaps a listing's slot collection in one transaction.
	ReplaceSlots(
		ctx context.Context,
		listingID uint,
		slots []Slot,
	) error

	// -------- Reservation (create / atomic claim) --------

	// CreateReservation claims the slot and inserts the reservation in a
	// single transaction. claimSlot=false for flexible-schedule requests
	// that reference no fixed slot.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
		claimSlot bool,
	) error

	// -------- Reservation (state change) --------
	GetReservationForSalon(
		ctx context.Context,
		reservationID uint,
		salonID uint,
	) (*models.Reservation, error)

	GetReservationForStudent(
		ctx context.Context,
		reservationID uint,
		studentID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// ReleaseSlot flips a booked slot back to unbooked. Best-effort
	// follow-up to a cancellation; callers log, never fail on it.
	ReleaseSlot(
		ctx context.Context,
		listingID uint,
		start time.Time,
	) error

	// -------- Dashboard --------
	ListReservationsByStudent(
		ctx context.Context,
		studentID uint,
	) ([]models.Reservation, error)

	ListReservationsBySalon(
		ctx context.Context,
		salonID uint,
	) ([]models.Reservation, error)

	LatestMessages(
		ctx context.Context,
		reservationIDs []uint,
	) (map[uint]models.ReservationMessage, error)
}
