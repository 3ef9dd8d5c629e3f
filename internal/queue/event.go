// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a booking is accepted.
// It carries enough for downstream consumers (notifications, space
// analytics) to act without calling back into the service.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	UserEmail     string `json:"user_email"`
	StudentID     string `json:"student_id,omitempty"`
	RoomID        string `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	Building      string `json:"building"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	ConfirmedAt   string `json:"confirmed_at"`
}
