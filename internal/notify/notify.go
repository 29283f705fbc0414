package notify

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/models"
)

// Writer persists notification rows. Delivery beyond the row (push,
// email) is out of scope; consumers poll their notification feed.
type Writer struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(
	recipientID uint,
	event string,
	reservationID *uint,
	payload any,
) error {

	var payloadJSON string
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			payloadJSON = string(b)
		}
	}

	n := models.Notification{
		RecipientID:   recipientID,
		Event:         event,
		ReservationID: reservationID,
		Payload:       payloadJSON,
	}

	return w.db.Create(&n).Error
}
