package booking

import (
	"context"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/dto"
	"github.com/cutmodel/model-match/internal/models"
)

type Dashboard struct {
	repo domain.Repository
}

func NewDashboard(repo domain.Repository) *Dashboard {
	return &Dashboard{repo: repo}
}

// Execute partitions the caller's reservations into the three dashboard
// buckets and, for confirmed ones only, resolves the latest chat message
// to drive the unread indicator.
func (uc *Dashboard) Execute(
	ctx context.Context,
	role string,
	profileID uint,
	viewerUserID uint,
) (*dto.DashboardDTO, error) {

	var (
		reservations []models.Reservation
		err          error
	)

	if role == models.RoleSalon {
		reservations, err = uc.repo.ListReservationsBySalon(ctx, profileID)
	} else {
		reservations, err = uc.repo.ListReservationsByStudent(ctx, profileID)
	}
	if err != nil {
		return nil, err
	}

	buckets := domain.Partition(reservations)

	latest := domain.NewLatestMessages()
	if len(buckets.Confirmed) > 0 {
		ids := make([]uint, 0, len(buckets.Confirmed))
		for _, r := range buckets.Confirmed {
			ids = append(ids, r.ID)
		}

		msgs, err := uc.repo.LatestMessages(ctx, ids)
		if err != nil {
			return nil, err
		}
		latest.Seed(msgs)
	}

	out := &dto.DashboardDTO{
		Pending:   toListDTOs(buckets.Pending, nil, 0),
		Confirmed: toListDTOs(buckets.Confirmed, latest, viewerUserID),
		Finished:  toListDTOs(buckets.Finished, nil, 0),
	}
	return out, nil
}

func toListDTOs(
	reservations []models.Reservation,
	latest *domain.LatestMessages,
	viewerUserID uint,
) []dto.ReservationListDTO {

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		item := dto.ReservationListDTO{
			ID:           r.ID,
			ListingID:    r.ListingID,
			ListingTitle: r.Listing.Title,
			SalonName:    r.Salon.Name,
			StudentName:  r.Student.Name,
			StartTime:    r.StartTime,
			Status:       r.Status,
		}

		if latest != nil {
			if msg, ok := latest.Latest(r.ID); ok {
				item.LatestMessage = &dto.MessagePreviewDTO{
					ID:         msg.ID,
					Body:       msg.Body,
					SenderRole: msg.SenderRole,
					CreatedAt:  msg.CreatedAt,
				}
				item.Unread = latest.Unread(r.ID, viewerUserID)
			}
		}

		out = append(out, item)
	}
	return out
}
