package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/dto"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/httpresp"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/timezone"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

////////////////////////////////////////////////////////
// LISTING FEED
////////////////////////////////////////////////////////

// ListListings serves the public feed: active listings ordered by
// deadline (nulls last) then newest first, filtered in memory by the
// AND-combined query predicates.
func (h *PublicHandler) ListListings(c *gin.Context) {
	filter := domain.ListingFilter{
		Gender:        strings.TrimSpace(c.Query("gender")),
		AvailableOnly: c.Query("available_only") == "true",
	}

	if menus := strings.TrimSpace(c.Query("menus")); menus != "" && menus != "all" {
		for _, m := range strings.Split(menus, ",") {
			m = strings.ToLower(strings.TrimSpace(m))
			if m != "" {
				filter.Menus = append(filter.Menus, m)
			}
		}
	}

	var listings []models.Listing
	if err := h.db.
		Preload("Salon").
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("status = ?", models.ListingActive).
		Order("deadline ASC NULLS LAST").
		Order("created_at DESC").
		Find(&listings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_listings", "Failed to load listings.")
		return
	}

	now := timezone.Now()

	out := make([]dto.ListingListDTO, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		if !filter.Match(l, now) {
			continue
		}
		out = append(out, toListingDTO(l, now))
	}

	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// LISTING DETAIL
////////////////////////////////////////////////////////

func (h *PublicHandler) GetListing(c *gin.Context) {
	id := c.Param("id")

	var listing models.Listing
	if err := h.db.
		Preload("Salon").
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		First(&listing, id).Error; err != nil {
		httperr.NotFound(c, "listing_not_found", "Listing not found.")
		return
	}

	now := timezone.Now()

	c.JSON(http.StatusOK, gin.H{
		"listing": listing,
		"derived": toListingDTO(&listing, now),
	})
}

////////////////////////////////////////////////////////
// DERIVED SETS
////////////////////////////////////////////////////////

func toListingDTO(l *models.Listing, now time.Time) dto.ListingListDTO {
	slots := make([]domain.Slot, 0, len(l.Slots))
	for _, s := range l.Slots {
		slots = append(slots, domain.Slot{StartTime: s.StartTime, Booked: s.Booked})
	}

	var bookable, consult []time.Time
	for _, s := range domain.BookableSlots(slots, now) {
		bookable = append(bookable, s.StartTime)
	}
	for _, s := range domain.ConsultSlots(slots, now) {
		consult = append(consult, s.StartTime)
	}

	return dto.ListingListDTO{
		ID:         l.ID,
		Title:      l.Title,
		SalonName:  l.Salon.Name,
		Station:    l.Salon.Station,
		MenuTags:   l.MenuTagList(),
		Gender:     l.Gender,
		HairLength: l.HairLength,
		HasReward:  l.HasReward,
		RewardText: l.RewardText,
		PhotoURL:   l.PhotoURL,
		Deadline:   l.Deadline,

		BookableSlots:    bookable,
		ConsultSlots:     consult,
		FlexibleSchedule: l.FlexibleSchedule,
	}
}
