package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

func bookedAt(roomID string, at time.Time) model.Reservation {
	return model.Reservation{
		ID:        "res-" + roomID,
		Room:      model.Room{ID: roomID, RoomNumber: "304"},
		Status:    model.ReservationUpcoming,
		StartTime: "2:00 PM",
		EndTime:   "4:00 PM",
		CreatedAt: at,
	}
}

func TestManager_RoomStatus(t *testing.T) {
	now := time.Date(2026, time.March, 9, 15, 0, 0, 0, time.UTC)
	m := NewManager()
	s := m.Start(studentUser())

	t.Run("Should report available with no reservations", func(t *testing.T) {
		assert.Equal(t, model.StatusAvailable, m.RoomStatus("1", now))
	})
	t.Run("Should report occupied while the window runs", func(t *testing.T) {
		s.Reservations().Append(bookedAt("1", now.Add(-time.Hour)))
		assert.Equal(t, model.StatusOccupied, m.RoomStatus("1", now))
	})
	t.Run("Should report reserved once the window lapses", func(t *testing.T) {
		s.Reservations().Append(bookedAt("2", now.Add(-3*time.Hour)))
		assert.Equal(t, model.StatusReserved, m.RoomStatus("2", now))
	})
	t.Run("Should ignore cancelled bookings", func(t *testing.T) {
		s.Reservations().Append(bookedAt("3", now))
		s.Reservations().Cancel("res-3")
		assert.Equal(t, model.StatusAvailable, m.RoomStatus("3", now))
	})
}

func TestManager_Allocation(t *testing.T) {
	now := time.Date(2026, time.March, 9, 15, 0, 0, 0, time.UTC)
	m := NewManager()
	room := model.Room{ID: "1", RoomNumber: "304", Building: "Science Hall"}

	t.Run("Should carry only the status when nobody holds the room", func(t *testing.T) {
		alloc := m.Allocation(room, now)
		assert.Equal(t, model.StatusAvailable, alloc.Status)
		assert.Empty(t, alloc.HolderName)
	})

	s := m.Start(studentUser())
	s.Reservations().Append(bookedAt("1", now.Add(-time.Hour)))

	t.Run("Should name the current holder", func(t *testing.T) {
		alloc := m.Allocation(room, now)
		assert.Equal(t, model.StatusOccupied, alloc.Status)
		assert.Equal(t, "Shreeja Kulkarni", alloc.HolderName)
		assert.Equal(t, "#82910442", alloc.StudentID)
		assert.Equal(t, "2:00 PM", alloc.StartTime)
		assert.Equal(t, "4:00 PM", alloc.EndTime)
	})
}
