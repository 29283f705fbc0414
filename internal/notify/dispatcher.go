package notify

import "log"

type Event struct {
	RecipientID   uint
	Event         string
	ReservationID *uint
	Payload       any
}

// Sink is where dispatched notifications land; in production the
// gorm-backed Writer.
type Sink interface {
	Write(recipientID uint, event string, reservationID *uint, payload any) error
}

// Dispatcher delivers notifications at most once, with no retry.
// Failures are logged and never reach the caller: notification is
// outside the transactional boundary of every state transition.
type Dispatcher struct {
	writer Sink
	queue  chan Event
}

func NewDispatcher(writer Sink) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Write(
			ev.RecipientID,
			ev.Event,
			ev.ReservationID,
			ev.Payload,
		); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full → drop rather than block the request
		log.Println("notify queue full, dropping event")
	}
}
