package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/audit"
	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
)

type ProfileHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProfileHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type UpdateStudentProfileRequest struct {
	Name       *string `json:"name"`
	School     *string `json:"school"`
	HairLength *string `json:"hair_length"`
}

type UpdateSalonProfileRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Station     *string `json:"station"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
}

// --------- Handlers ---------

func (h *ProfileHandler) UpdateStudent(c *gin.Context) {
	student, ok := studentProfile(h.db, c)
	if !ok {
		return
	}

	var req UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "name_required", "Name cannot be empty.")
			return
		}
		student.Name = *req.Name
	}
	if req.School != nil {
		student.School = *req.School
	}
	if req.HairLength != nil {
		student.HairLength = *req.HairLength
	}

	if err := h.db.Save(student).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update the profile.")
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *ProfileHandler) UpdateSalon(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	var req UpdateSalonProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "name_required", "Name cannot be empty.")
			return
		}
		salon.Name = *req.Name
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Station != nil {
		salon.Station = *req.Station
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}

	if err := h.db.Save(salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update the profile.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// DeleteAccount removes the user; profile, listings, reservations and
// messages go with it through the FK cascades.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_account", "Failed to delete the account.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "account_deleted",
		Entity:   "user",
		EntityID: &userID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
