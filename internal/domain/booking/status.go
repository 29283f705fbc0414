package booking

import "github.com/cutmodel/model-match/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending            Status = "pending"
	StatusConfirmed          Status = "confirmed"
	StatusCancelledBySalon   Status = "cancelled_by_salon"
	StatusCancelledByStudent Status = "cancelled_by_student"
)

func InitialStatus() Status {
	return StatusPending
}

// Terminal states accept no further transition.
func (s Status) Terminal() bool {
	return s == StatusCancelledBySalon || s == StatusCancelledByStudent
}

// ===============================
// Role-gated transitions
// ===============================

// CanConfirm: salon only, pending only.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancelBySalon: salon may cancel while the reservation is live.
func CanCancelBySalon(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancelByStudent: students may only back out of a confirmed
// reservation. The 48h window guard is checked separately.
func CanCancelByStudent(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// NotificationEvent maps a freshly-entered status to the event tag
// dispatched to the other party.
func NotificationEvent(s Status) string {
	switch s {
	case StatusPending:
		return "reservation_requested"
	case StatusConfirmed:
		return "reservation_confirmed"
	case StatusCancelledBySalon:
		return "reservation_cancelled_by_salon"
	case StatusCancelledByStudent:
		return "reservation_cancelled_by_student"
	}
	return ""
}
