package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/audit"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDispatcher}
}

func (h *AdminHandler) adminID(c *gin.Context) *uint {
	id := c.MustGet(middleware.ContextUserID).(uint)
	return &id
}

func (h *AdminHandler) pagination(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset = (page - 1) * limit
	return
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit, offset := h.pagination(c)

	q := h.db.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_users", "Failed to count users.")
		return
	}

	var users []models.User
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Failed to list users.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"users": users,
	})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Failed to delete the user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   h.adminID(c),
		Action:   "admin_user_deleted",
		Entity:   "user",
		EntityID: &userID,
		Metadata: gin.H{"email": user.Email, "role": user.Role},
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AdminHandler) ListListings(c *gin.Context) {
	page, limit, offset := h.pagination(c)

	q := h.db.Model(&models.Listing{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_listings", "Failed to count listings.")
		return
	}

	var listings []models.Listing
	if err := q.
		Preload("Salon").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_listings", "Failed to list listings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     page,
		"limit":    limit,
		"total":    total,
		"listings": listings,
	})
}

func (h *AdminHandler) DeleteListing(c *gin.Context) {
	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var listing models.Listing
	if err := h.db.First(&listing, listingID).Error; err != nil {
		httperr.NotFound(c, "listing_not_found", "Listing not found.")
		return
	}

	if err := h.db.Delete(&listing).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_listing", "Failed to delete the listing.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   h.adminID(c),
		Action:   "admin_listing_deleted",
		Entity:   "listing",
		EntityID: &listingID,
		Metadata: gin.H{"title": listing.Title, "salon_id": listing.SalonID},
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// RESERVATIONS
// ======================================================

func (h *AdminHandler) ListReservations(c *gin.Context) {
	page, limit, offset := h.pagination(c)

	q := h.db.Model(&models.Reservation{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_reservations", "Failed to count reservations.")
		return
	}

	var reservations []models.Reservation
	if err := q.
		Preload("Listing").
		Preload("Student").
		Preload("Salon").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reservations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reservations", "Failed to list reservations.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":         page,
		"limit":        limit,
		"total":        total,
		"reservations": reservations,
	})
}
