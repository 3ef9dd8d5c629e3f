package model

import "time"

// ReservationStatus is the lifecycle state of a booking.  The only
// transition the service performs is upcoming → cancelled; completed
// exists for history views but no time-based expiry sets it.
type ReservationStatus string

const (
	ReservationUpcoming  ReservationStatus = "upcoming"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation records a booked time window against a room.  The Room
// is held by value: it is a snapshot taken at booking time, so later
// catalog edits never rewrite booking history.
//
// Fields:
//  ID        - unique identifier, generated when the booking is accepted.
//  Room      - snapshot of the booked room.
//  Date      - display label for the booking day.
//  StartTime - display label for the start of the window.
//  EndTime   - display label for the end of the window.
//  Status    - upcoming, completed or cancelled.
//  CreatedAt - when the booking was accepted.
type Reservation struct {
	ID        string            `json:"id"`
	Room      Room              `json:"room"`
	Date      string            `json:"date"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
