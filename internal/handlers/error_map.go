package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cutmodel/model-match/internal/httperr"
)

// Known business codes get a friendlier message; anything else surfaces
// as a generic internal error.
var reservationErrorMessages = map[string]string{
	"listing_not_found":      "This listing no longer exists.",
	"listing_closed":         "This listing is closed for new requests.",
	"slot_already_booked":    "That time was just booked by someone else.",
	"invalid_requested_time": "The requested time is not available on this listing.",
	"booking_window_closed":  "Direct booking closes 48 hours before the slot. Please contact the salon via chat.",
	"cancel_window_closed":   "Cancellation closes 48 hours before the reservation. Please contact the salon directly.",
	"reason_required":        "A cancellation reason is required.",
	"reservation_not_found":  "Reservation not found.",
	"invalid_state":          "This reservation can no longer change state.",
	"duplicate_slot":         "That time is already in the slot list.",
	"slot_booked":            "A booked slot cannot be removed.",
	"slot_not_found":         "Slot not found.",
	"booked_slot_removed":    "The edit would drop a slot that has already been booked.",
	"listing_needs_schedule": "A listing needs at least one slot or a flexible schedule note.",
}

func mapBookingError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if msg, ok := reservationErrorMessages[code]; ok {
		switch code {
		case "listing_not_found", "reservation_not_found", "slot_not_found":
			httperr.NotFound(c, code, msg)
		case "slot_already_booked":
			httperr.Conflict(c, code, msg)
		default:
			httperr.BadRequest(c, code, msg)
		}
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
}
