package policy

import (
	"time"

	"github.com/google/uuid"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

// MaxUpcoming is the most upcoming reservations a student may hold at
// once.
const MaxUpcoming = 2

// BookingCode classifies a booking decision.
type BookingCode string

const (
	// BookingAccepted means the reservation may be created.
	BookingAccepted BookingCode = "accepted"
	// BookingDoubleBooked means the requester already holds an
	// upcoming reservation for this room.  This is a warning, not a
	// hard stop: the caller may retry with the warning acknowledged.
	BookingDoubleBooked BookingCode = "double_booked"
	// BookingLimitReached means the requester already holds the
	// maximum number of upcoming reservations.  Always a hard stop.
	BookingLimitReached BookingCode = "limit_reached"
)

// BookingDecision is the engine's verdict on a booking request.
type BookingDecision struct {
	Code    BookingCode `json:"code"`
	Message string      `json:"message,omitempty"`
}

// Clock supplies the notional "now" a new reservation's window is
// anchored to.  Injected so tests control time.
type Clock func() time.Time

// BookingEngine decides whether a student may reserve a room, given
// the reservations that student already holds.  It performs no I/O;
// appending accepted reservations to a store is the caller's job.
type BookingEngine struct {
	now Clock
}

// NewBookingEngine returns an engine anchored to the given clock.
// A nil clock means wall time.
func NewBookingEngine(now Clock) *BookingEngine {
	if now == nil {
		now = time.Now
	}
	return &BookingEngine{now: now}
}

// Evaluate applies the booking rules for a request against room.
//
// Double-booking is checked before the reservation limit so its
// message wins when both conditions hold.  A double-booking is
// proceedable: when the caller passes acknowledged=true, the request
// falls through to the limit check and may still be accepted.  The
// limit itself can never be acknowledged away.
func (e *BookingEngine) Evaluate(existing []model.Reservation, room model.Room, acknowledged bool) BookingDecision {
	active := 0
	sameRoom := false
	for _, r := range existing {
		if r.Status != model.ReservationUpcoming {
			continue
		}
		active++
		if r.Room.ID == room.ID {
			sameRoom = true
		}
	}

	if sameRoom && !acknowledged {
		return BookingDecision{
			Code:    BookingDoubleBooked,
			Message: "You already have an active reservation for this room.",
		}
	}
	if active >= MaxUpcoming {
		return BookingDecision{
			Code:    BookingLimitReached,
			Message: "You've reached the maximum of 2 active reservations.",
		}
	}
	return BookingDecision{Code: BookingAccepted}
}

// Build constructs the reservation an accepted decision stands for: a
// fresh unique id, upcoming status, and a two-hour window starting at
// the engine's notional now.
func (e *BookingEngine) Build(room model.Room) model.Reservation {
	now := e.now()
	return model.Reservation{
		ID:        uuid.NewString(),
		Room:      room,
		Date:      "Today",
		StartTime: clockLabel(now),
		EndTime:   clockLabel(now.Add(2 * time.Hour)),
		Status:    model.ReservationUpcoming,
		CreatedAt: now,
	}
}

// clockLabel renders a time the way the mobile client displays it,
// e.g. "2:00 PM".
func clockLabel(t time.Time) string {
	return t.Format("3:04 PM")
}
