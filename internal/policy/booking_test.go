package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

func room(id string) model.Room {
	return model.Room{ID: id, RoomNumber: "304", Building: "Science Hall", Capacity: 25}
}

func upcoming(roomID string) model.Reservation {
	return model.Reservation{ID: "res-" + roomID, Room: room(roomID), Status: model.ReservationUpcoming}
}

func fixedClock() Clock {
	at := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC) // 2:00 PM
	return func() time.Time { return at }
}

func TestBookingEngine_Evaluate(t *testing.T) {
	e := NewBookingEngine(fixedClock())

	t.Run("Should accept with no existing reservations", func(t *testing.T) {
		d := e.Evaluate(nil, room("1"), false)
		assert.Equal(t, BookingAccepted, d.Code)
	})
	t.Run("Should accept a second distinct room", func(t *testing.T) {
		d := e.Evaluate([]model.Reservation{upcoming("1")}, room("2"), false)
		assert.Equal(t, BookingAccepted, d.Code)
	})
	t.Run("Should reject a third room at the limit", func(t *testing.T) {
		existing := []model.Reservation{upcoming("1"), upcoming("2")}
		d := e.Evaluate(existing, room("3"), false)
		assert.Equal(t, BookingLimitReached, d.Code)
		assert.Equal(t, "You've reached the maximum of 2 active reservations.", d.Message)
	})
	t.Run("Should flag a repeat booking of the same room", func(t *testing.T) {
		d := e.Evaluate([]model.Reservation{upcoming("1")}, room("1"), false)
		assert.Equal(t, BookingDoubleBooked, d.Code)
		assert.Equal(t, "You already have an active reservation for this room.", d.Message)
	})
	t.Run("Should prefer the double-booking message when both conditions hold", func(t *testing.T) {
		existing := []model.Reservation{upcoming("1"), upcoming("2")}
		d := e.Evaluate(existing, room("1"), false)
		assert.Equal(t, BookingDoubleBooked, d.Code)
	})
	t.Run("Should let an acknowledged double-booking proceed", func(t *testing.T) {
		d := e.Evaluate([]model.Reservation{upcoming("1")}, room("1"), true)
		assert.Equal(t, BookingAccepted, d.Code)
	})
	t.Run("Should still enforce the limit after acknowledgement", func(t *testing.T) {
		existing := []model.Reservation{upcoming("1"), upcoming("2")}
		d := e.Evaluate(existing, room("1"), true)
		assert.Equal(t, BookingLimitReached, d.Code)
	})
	t.Run("Should ignore cancelled and completed reservations", func(t *testing.T) {
		cancelled := upcoming("1")
		cancelled.Status = model.ReservationCancelled
		done := upcoming("2")
		done.Status = model.ReservationCompleted
		d := e.Evaluate([]model.Reservation{cancelled, done}, room("1"), false)
		assert.Equal(t, BookingAccepted, d.Code)
	})
}

func TestBookingEngine_Build(t *testing.T) {
	e := NewBookingEngine(fixedClock())

	res := e.Build(room("1"))
	require.NotEmpty(t, res.ID)
	assert.Equal(t, model.ReservationUpcoming, res.Status)
	assert.Equal(t, "1", res.Room.ID)
	assert.Equal(t, "Today", res.Date)
	assert.Equal(t, "2:00 PM", res.StartTime)
	assert.Equal(t, "4:00 PM", res.EndTime)

	other := e.Build(room("1"))
	assert.NotEqual(t, res.ID, other.ID)
}
