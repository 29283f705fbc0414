package booking

import (
	"time"

	"github.com/cutmodel/model-match/internal/timezone"
)

// Direct booking and student cancellation close this many hours before
// the slot's instant; after that only chat negotiation is offered.
const BookingWindowHours = 48

// Pure predicates over an event instant and a caller-supplied "now".
// For any future instant exactly one of IsBeforeCutoff / InConsultZone
// holds; past instants satisfy neither.

func IsFuture(t, now time.Time) bool {
	return t.After(now)
}

// IsBeforeCutoff reports whether the window is still open: now is
// strictly before (t - h hours).
func IsBeforeCutoff(t, now time.Time, h int) bool {
	return now.Before(t.Add(-time.Duration(h) * time.Hour))
}

// InConsultZone reports the "too late to book, event not yet happened"
// zone: now at or past the cutoff but strictly before t.
func InConsultZone(t, now time.Time, h int) bool {
	return !now.Before(t.Add(-time.Duration(h)*time.Hour)) && now.Before(t)
}

// IsDeadlinePassed treats deadlines as day-granular: a deadline holds
// until the end of its calendar day in JST, not until the instant itself.
func IsDeadlinePassed(deadline, now time.Time) bool {
	return now.After(timezone.EndOfDay(deadline))
}
