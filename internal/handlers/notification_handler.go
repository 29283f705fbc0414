package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/httpresp"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// List returns the caller's notification feed, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	err := h.db.
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Failed to list notifications.")
		return
	}

	httpresp.List(c, notifications)
}
