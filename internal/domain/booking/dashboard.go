package booking

import "github.com/cutmodel/model-match/internal/models"

// ===============================
// Dashboard aggregation
// ===============================

// Buckets partitions a user's reservations for display. Both cancelled
// variants collapse into Finished; the row keeps its real status for
// labelling.
type Buckets struct {
	Pending   []models.Reservation
	Confirmed []models.Reservation
	Finished  []models.Reservation
}

func Partition(reservations []models.Reservation) Buckets {
	var b Buckets
	for _, r := range reservations {
		switch Status(r.Status) {
		case StatusPending:
			b.Pending = append(b.Pending, r)
		case StatusConfirmed:
			b.Confirmed = append(b.Confirmed, r)
		default:
			b.Finished = append(b.Finished, r)
		}
	}
	return b
}

// LatestMessages caches the newest chat message per reservation, updated
// incrementally as live messages arrive.
type LatestMessages struct {
	byReservation map[uint]models.ReservationMessage
}

func NewLatestMessages() *LatestMessages {
	return &LatestMessages{byReservation: make(map[uint]models.ReservationMessage)}
}

func (m *LatestMessages) Seed(msgs map[uint]models.ReservationMessage) {
	for resID, msg := range msgs {
		m.byReservation[resID] = msg
	}
}

// Apply replaces the cached entry when the incoming message has a
// different id. Redelivery of the same message is a no-op, so the update
// is idempotent. Returns whether the cache changed.
func (m *LatestMessages) Apply(msg models.ReservationMessage) bool {
	cached, ok := m.byReservation[msg.ReservationID]
	if ok && cached.ID == msg.ID {
		return false
	}

	m.byReservation[msg.ReservationID] = msg
	return true
}

func (m *LatestMessages) Latest(reservationID uint) (models.ReservationMessage, bool) {
	msg, ok := m.byReservation[reservationID]
	return msg, ok
}

// Unread is a heuristic, not a read receipt: a latest message exists and
// someone other than the viewer sent it.
func (m *LatestMessages) Unread(reservationID uint, viewerUserID uint) bool {
	msg, ok := m.byReservation[reservationID]
	return ok && msg.SenderID != viewerUserID
}
