package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
	ucBooking "github.com/cutmodel/model-match/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db *gorm.DB

	create          *ucBooking.CreateReservation
	confirm         *ucBooking.ConfirmReservation
	cancelBySalon   *ucBooking.CancelBySalon
	cancelByStudent *ucBooking.CancelByStudent
	dashboard       *ucBooking.Dashboard
}

func NewReservationHandler(
	db *gorm.DB,
	create *ucBooking.CreateReservation,
	confirm *ucBooking.ConfirmReservation,
	cancelBySalon *ucBooking.CancelBySalon,
	cancelByStudent *ucBooking.CancelByStudent,
	dashboard *ucBooking.Dashboard,
) *ReservationHandler {
	return &ReservationHandler{
		db:              db,
		create:          create,
		confirm:         confirm,
		cancelBySalon:   cancelBySalon,
		cancelByStudent: cancelByStudent,
		dashboard:       dashboard,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Message   string `json:"message"`
}

type StudentCancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ======================================================
// CREATE (STUDENT)
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	student, ok := studentProfile(h.db, c)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request payload.")
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucBooking.CreateReservationInput{
		ListingID: req.ListingID,
		StudentID: student.ID,
		Date:      req.Date,
		Time:      req.Time,
		Message:   req.Message,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, r)
}

// ======================================================
// CONFIRM / CANCEL (SALON)
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	r, err := h.confirm.Execute(c.Request.Context(), salon.ID, id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, r)
}

func (h *ReservationHandler) CancelBySalon(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	result, err := h.cancelBySalon.Execute(c.Request.Context(), salon.ID, id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation":   result.Reservation,
		"slot_released": result.SlotReleased,
	})
}

// ======================================================
// CANCEL (STUDENT, 48H GUARD)
// ======================================================

func (h *ReservationHandler) CancelByStudent(c *gin.Context) {
	student, ok := studentProfile(h.db, c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StudentCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "reason_required", "A cancellation reason is required.")
		return
	}

	result, err := h.cancelByStudent.Execute(c.Request.Context(), student.ID, id, req.Reason)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation":   result.Reservation,
		"slot_released": result.SlotReleased,
	})
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *ReservationHandler) Dashboard(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	var profileID uint
	if role == models.RoleSalon {
		salon, ok := salonProfile(h.db, c)
		if !ok {
			return
		}
		profileID = salon.ID
	} else {
		student, ok := studentProfile(h.db, c)
		if !ok {
			return
		}
		profileID = student.ID
	}

	view, err := h.dashboard.Execute(c.Request.Context(), role, profileID, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Failed to load the dashboard.")
		return
	}

	c.JSON(http.StatusOK, view)
}
