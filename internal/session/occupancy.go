package session

import (
	"time"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

// reservationWindow is how long a booking occupies its room.
const reservationWindow = 2 * time.Hour

// RoomStatus derives the occupancy of one room from every live
// session's upcoming reservations.  A room is occupied while a
// booking's two-hour window is running, reserved when a booking
// exists whose window has not started or has lapsed without being
// cancelled, and available otherwise.
func (m *Manager) RoomStatus(roomID string, now time.Time) model.RoomStatus {
	status := model.StatusAvailable
	m.eachUpcoming(func(_ *Session, r model.Reservation) {
		if r.Room.ID != roomID {
			return
		}
		if inWindow(r, now) {
			status = model.StatusOccupied
			return
		}
		if status == model.StatusAvailable {
			status = model.StatusReserved
		}
	})
	return status
}

// Allocation reports who holds a room right now.  When nobody does,
// the returned allocation carries only the status.
func (m *Manager) Allocation(room model.Room, now time.Time) model.Allocation {
	alloc := model.Allocation{Room: room, Status: model.StatusAvailable}
	m.eachUpcoming(func(s *Session, r model.Reservation) {
		if r.Room.ID != room.ID {
			return
		}
		// Prefer the booking whose window is running over one that
		// merely exists.
		if alloc.Status == model.StatusOccupied && !inWindow(r, now) {
			return
		}
		u := s.Identity()
		alloc.Status = model.StatusReserved
		if inWindow(r, now) {
			alloc.Status = model.StatusOccupied
		}
		alloc.HolderName = u.Name
		alloc.HolderEmail = u.Email
		alloc.StudentID = u.StudentID
		alloc.StartTime = r.StartTime
		alloc.EndTime = r.EndTime
	})
	return alloc
}

func inWindow(r model.Reservation, now time.Time) bool {
	return !now.Before(r.CreatedAt) && now.Before(r.CreatedAt.Add(reservationWindow))
}

// eachUpcoming visits every upcoming reservation across all sessions.
func (m *Manager) eachUpcoming(fn func(*Session, model.Reservation)) {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()
	for _, s := range sessions {
		for _, r := range s.Reservations().Upcoming() {
			fn(s, r)
		}
	}
}
