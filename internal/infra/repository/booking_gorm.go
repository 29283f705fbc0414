package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) GetListing(
	ctx context.Context,
	id uint,
) (*models.Listing, error) {

	var listing models.Listing
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *BookingGormRepository) GetListingForSalon(
	ctx context.Context,
	listingID uint,
	salonID uint,
) (*models.Listing, error) {

	var listing models.Listing
	if err := r.db.WithContext(ctx).
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("id = ? AND salon_id = ?", listingID, salonID).
		First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *BookingGormRepository) ReplaceSlots(
	ctx context.Context,
	listingID uint,
	slots []domain.Slot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("listing_id = ?", listingID).
			Delete(&models.ListingSlot{}).Error; err != nil {
			return err
		}

		if len(slots) == 0 {
			return nil
		}

		rows := make([]models.ListingSlot, 0, len(slots))
		for _, s := range slots {
			rows = append(rows, models.ListingSlot{
				ListingID: listingID,
				StartTime: s.StartTime,
				Booked:    s.Booked,
			})
		}
		return tx.Create(&rows).Error
	})
}

// --------------------------------------------------
// Reservation (create / atomic claim)
// --------------------------------------------------

// CreateReservation claims the requested slot and inserts the reservation
// in one transaction. The row lock serializes concurrent requests for the
// same slot; the loser sees booked=true and gets the classified error.
func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
	claimSlot bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if claimSlot {
			var slot models.ListingSlot
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("listing_id = ? AND start_time = ?", res.ListingID, res.StartTime).
				First(&slot).Error; err != nil {

				if err == gorm.ErrRecordNotFound {
					return httperr.ErrBusiness("invalid_requested_time")
				}
				return err
			}

			if slot.Booked {
				return httperr.ErrBusiness("slot_already_booked")
			}

			slot.Booked = true
			if err := tx.Save(&slot).Error; err != nil {
				return err
			}
		}

		return tx.Create(res).Error
	})
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetReservationForSalon(
	ctx context.Context,
	reservationID uint,
	salonID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Salon").
		Where("id = ? AND salon_id = ?", reservationID, salonID).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *BookingGormRepository) GetReservationForStudent(
	ctx context.Context,
	reservationID uint,
	studentID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Salon").
		Where("id = ? AND student_id = ?", reservationID, studentID).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	listingID uint,
	start time.Time,
) error {

	result := r.db.WithContext(ctx).
		Model(&models.ListingSlot{}).
		Where("listing_id = ? AND start_time = ?", listingID, start).
		Update("booked", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrBusiness("slot_not_found")
	}
	return nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *BookingGormRepository) ListReservationsByStudent(
	ctx context.Context,
	studentID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Salon").
		Preload("Student").
		Where("student_id = ?", studentID).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListReservationsBySalon(
	ctx context.Context,
	salonID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Salon").
		Preload("Student").
		Where("salon_id = ?", salonID).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// LatestMessages resolves the newest message per reservation in one
// query, DISTINCT ON keyed by reservation ordered newest-first with id
// as the stable tie break.
func (r *BookingGormRepository) LatestMessages(
	ctx context.Context,
	reservationIDs []uint,
) (map[uint]models.ReservationMessage, error) {

	if len(reservationIDs) == 0 {
		return map[uint]models.ReservationMessage{}, nil
	}

	var msgs []models.ReservationMessage
	if err := r.db.WithContext(ctx).
		Raw(`
            SELECT DISTINCT ON (reservation_id) *
            FROM reservation_messages
            WHERE reservation_id IN ?
            ORDER BY reservation_id, created_at DESC, id DESC
        `, reservationIDs).
		Scan(&msgs).Error; err != nil {
		return nil, err
	}

	out := make(map[uint]models.ReservationMessage, len(msgs))
	for _, m := range msgs {
		out[m.ReservationID] = m
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
