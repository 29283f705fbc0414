package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/realtime"
)

// ======================================================
// HANDLER
// ======================================================

type MessageHandler struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewMessageHandler(db *gorm.DB, hub *realtime.Hub) *MessageHandler {
	return &MessageHandler{db: db, hub: hub}
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// reservationForParty loads the reservation and checks the caller is one
// of its two parties.
func (h *MessageHandler) reservationForParty(c *gin.Context) (*models.Reservation, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var r models.Reservation
	if err := h.db.
		Preload("Student").
		Preload("Salon").
		First(&r, id).Error; err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return nil, false
	}

	if r.Student.UserID != userID && r.Salon.UserID != userID {
		httperr.Forbidden(c, "not_a_party", "You are not part of this reservation.")
		return nil, false
	}

	return &r, true
}

// ======================================================
// SNAPSHOT
// ======================================================

// List returns the chronological snapshot; clients follow up with the
// live stream and de-dup by message id.
func (h *MessageHandler) List(c *gin.Context) {
	r, ok := h.reservationForParty(c)
	if !ok {
		return
	}

	var msgs []models.ReservationMessage
	if err := h.db.
		Where("reservation_id = ?", r.ID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_messages", "Failed to load messages.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// ======================================================
// APPEND
// ======================================================

func (h *MessageHandler) Send(c *gin.Context) {
	r, ok := h.reservationForParty(c)
	if !ok {
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "body_required", "A message body is required.")
		return
	}

	msg := models.ReservationMessage{
		ReservationID: r.ID,
		SenderID:      userID,
		SenderRole:    role,
		Body:          req.Body,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_send_message", "Failed to send the message.")
		return
	}

	// Best-effort fan-out; the message is already persisted.
	h.hub.PublishMessage(c.Request.Context(), msg)

	c.JSON(http.StatusCreated, msg)
}

// ======================================================
// LIVE STREAM (SSE)
// ======================================================

// Stream pushes new messages for one reservation as server-sent events.
// The subscription is torn down when the client goes away.
func (h *MessageHandler) Stream(c *gin.Context) {
	r, ok := h.reservationForParty(c)
	if !ok {
		return
	}

	sub := h.hub.Subscribe(c.Request.Context(), r.ID)
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ch := sub.Channel()
	c.Stream(func(w io.Writer) bool {
		select {
		case payload, open := <-ch:
			if !open {
				return false
			}

			msg, err := realtime.DecodeMessage(payload.Payload)
			if err != nil {
				return true
			}

			c.SSEvent("message", msg)
			return true

		case <-c.Request.Context().Done():
			return false
		}
	})
}
