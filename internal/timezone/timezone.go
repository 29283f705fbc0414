package timezone

import "time"

// All salons operate in JST. Slot instants are interpreted in this offset
// regardless of where the request comes from.
var JST = time.FixedZone("JST", 9*60*60)

func Now() time.Time {
	return time.Now().In(JST)
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, JST)
}

func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, JST)
}

// EndOfDay returns the last instant of t's calendar day in JST. Deadlines
// are day-granular, so "passed" means past this instant, not past t itself.
func EndOfDay(t time.Time) time.Time {
	t = t.In(JST)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, JST)
}
