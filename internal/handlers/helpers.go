package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/timezone"
)

// --------------------------------------------------
// Slot payloads
// --------------------------------------------------

type SlotInput struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

// All slot instants are JST, whatever zone the browser is in.
func parseSlotInputs(inputs []SlotInput) ([]time.Time, error) {
	out := make([]time.Time, 0, len(inputs))
	for _, in := range inputs {
		t, err := timezone.ParseDateTime(in.Date, in.Time)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id64), true
}

// --------------------------------------------------
// Profile resolution
// --------------------------------------------------

// salonProfile resolves the caller's salon profile or writes the error
// response and returns false.
func salonProfile(db *gorm.DB, c *gin.Context) (*models.SalonProfile, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var p models.SalonProfile
	if err := db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		httperr.NotFound(c, "salon_profile_not_found", "Salon profile not found.")
		return nil, false
	}
	return &p, true
}

func studentProfile(db *gorm.DB, c *gin.Context) (*models.StudentProfile, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var p models.StudentProfile
	if err := db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		httperr.NotFound(c, "student_profile_not_found", "Student profile not found.")
		return nil, false
	}
	return &p, true
}
