package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/audit"
	domain "github.com/cutmodel/model-match/internal/domain/booking"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/httpresp"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/timezone"
	ucBooking "github.com/cutmodel/model-match/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ListingHandler struct {
	db          *gorm.DB
	updateSlots *ucBooking.UpdateListingSlots
	audit       *audit.Dispatcher
}

func NewListingHandler(
	db *gorm.DB,
	updateSlots *ucBooking.UpdateListingSlots,
	auditDispatcher *audit.Dispatcher,
) *ListingHandler {
	return &ListingHandler{
		db:          db,
		updateSlots: updateSlots,
		audit:       auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	MenuTags    []string `json:"menu_tags" binding:"required,min=1"`

	Gender     string `json:"gender"`
	HairLength string `json:"hair_length"`
	Experience string `json:"experience"`
	PhotoUse   string `json:"photo_use"`

	HasReward  bool   `json:"has_reward"`
	RewardText string `json:"reward_text"`

	FlexibleSchedule string      `json:"flexible_schedule"`
	Deadline         string      `json:"deadline"` // YYYY-MM-DD, optional
	Slots            []SlotInput `json:"slots"`
}

type UpdateListingRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	MenuTags    *[]string `json:"menu_tags"`

	Gender     *string `json:"gender"`
	HairLength *string `json:"hair_length"`
	Experience *string `json:"experience"`
	PhotoUse   *string `json:"photo_use"`

	HasReward  *bool   `json:"has_reward"`
	RewardText *string `json:"reward_text"`

	FlexibleSchedule *string `json:"flexible_schedule"`
	Deadline         *string `json:"deadline"`
}

type UpdateSlotsRequest struct {
	Slots []SlotInput `json:"slots" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ListingHandler) Create(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	menuTags := models.JoinMenuTags(req.MenuTags)
	if menuTags == "" {
		httperr.BadRequest(c, "menu_tags_required", "At least one menu tag is required.")
		return
	}

	// A listing must have at least one bookable mechanism.
	if len(req.Slots) == 0 && req.FlexibleSchedule == "" {
		httperr.BadRequest(c, "listing_needs_schedule", "Add slots or a flexible schedule note.")
		return
	}

	instants, err := parseSlotInputs(req.Slots)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_time", "Invalid slot date or time.")
		return
	}

	slotSet := domain.NewSlotSet(nil)
	for _, t := range instants {
		if err := slotSet.Add(t); err != nil {
			mapBookingError(c, err)
			return
		}
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := timezone.ParseDate(req.Deadline)
		if err != nil {
			httperr.BadRequest(c, "invalid_deadline", "Invalid deadline date.")
			return
		}
		deadline = &d
	}

	listing := models.Listing{
		SalonID:          salon.ID,
		Title:            req.Title,
		Description:      req.Description,
		MenuTags:         menuTags,
		Gender:           defaultEnum(req.Gender, models.GenderAny),
		HairLength:       defaultEnum(req.HairLength, models.HairLengthAny),
		Experience:       defaultEnum(req.Experience, models.ExperienceAny),
		PhotoUse:         defaultEnum(req.PhotoUse, models.PhotoUseNone),
		HasReward:        req.HasReward,
		RewardText:       req.RewardText,
		FlexibleSchedule: req.FlexibleSchedule,
		Deadline:         deadline,
		Status:           models.ListingActive,
	}

	for _, s := range slotSet.Slots() {
		listing.Slots = append(listing.Slots, models.ListingSlot{StartTime: s.StartTime})
	}

	if err := h.db.Create(&listing).Error; err != nil {
		httperr.Internal(c, "failed_to_create_listing", "Failed to create the listing.")
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func defaultEnum(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ======================================================
// LIST / GET (OWNER)
// ======================================================

func (h *ListingHandler) ListMine(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	var listings []models.Listing
	if err := h.db.
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("salon_id = ?", salon.ID).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_listings", "Failed to list your listings.")
		return
	}

	httpresp.List(c, listings)
}

// ======================================================
// UPDATE (FIELDS)
// ======================================================

func (h *ListingHandler) Update(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}
	id := c.Param("id")

	var listing models.Listing
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salon.ID).
		First(&listing).Error; err != nil {
		httperr.NotFound(c, "listing_not_found", "Listing not found.")
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.MenuTags != nil {
		tags := models.JoinMenuTags(*req.MenuTags)
		if tags == "" {
			httperr.BadRequest(c, "menu_tags_required", "At least one menu tag is required.")
			return
		}
		listing.MenuTags = tags
	}
	if req.Gender != nil {
		listing.Gender = defaultEnum(*req.Gender, models.GenderAny)
	}
	if req.HairLength != nil {
		listing.HairLength = defaultEnum(*req.HairLength, models.HairLengthAny)
	}
	if req.Experience != nil {
		listing.Experience = defaultEnum(*req.Experience, models.ExperienceAny)
	}
	if req.PhotoUse != nil {
		listing.PhotoUse = defaultEnum(*req.PhotoUse, models.PhotoUseNone)
	}
	if req.HasReward != nil {
		listing.HasReward = *req.HasReward
	}
	if req.RewardText != nil {
		listing.RewardText = *req.RewardText
	}
	if req.FlexibleSchedule != nil {
		listing.FlexibleSchedule = *req.FlexibleSchedule
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			listing.Deadline = nil
		} else {
			d, err := timezone.ParseDate(*req.Deadline)
			if err != nil {
				httperr.BadRequest(c, "invalid_deadline", "Invalid deadline date.")
				return
			}
			listing.Deadline = &d
		}
	}

	// Clearing the flexible note must not leave a slotless listing.
	if listing.FlexibleSchedule == "" {
		var slotCount int64
		h.db.Model(&models.ListingSlot{}).Where("listing_id = ?", listing.ID).Count(&slotCount)
		if slotCount == 0 {
			httperr.BadRequest(c, "listing_needs_schedule", "Add slots or a flexible schedule note.")
			return
		}
	}

	if err := h.db.Save(&listing).Error; err != nil {
		httperr.Internal(c, "failed_to_update_listing", "Failed to update the listing.")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ======================================================
// UPDATE SLOTS (GUARDED)
// ======================================================

func (h *ListingHandler) UpdateSlots(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	instants, err := parseSlotInputs(req.Slots)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_time", "Invalid slot date or time.")
		return
	}

	slots, err := h.updateSlots.Execute(c.Request.Context(), salon.ID, listingID, instants)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ======================================================
// CLOSE / DELETE
// ======================================================

func (h *ListingHandler) Close(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}
	id := c.Param("id")

	var listing models.Listing
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salon.ID).
		First(&listing).Error; err != nil {
		httperr.NotFound(c, "listing_not_found", "Listing not found.")
		return
	}

	listing.Status = models.ListingClosed
	if err := h.db.Save(&listing).Error; err != nil {
		httperr.Internal(c, "failed_to_close_listing", "Failed to close the listing.")
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}
	userID := c.MustGet(middleware.ContextUserID).(uint)

	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var listing models.Listing
	if err := h.db.
		Where("id = ? AND salon_id = ?", listingID, salon.ID).
		First(&listing).Error; err != nil {
		httperr.NotFound(c, "listing_not_found", "Listing not found.")
		return
	}

	// Cascades to slots, reservations and their messages.
	if err := h.db.Select("Slots").Delete(&listing).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_listing", "Failed to delete the listing.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "listing_deleted",
		Entity:   "listing",
		EntityID: &listing.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
