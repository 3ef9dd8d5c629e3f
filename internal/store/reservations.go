package store

import (
	"sync"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

// Reservations is an append-only log of one user's bookings.  Records
// are never deleted; cancelling only flips the status, so history is
// preserved for the lifetime of the session.  Newest entries come
// first, matching the order the client displays them in.
//
// A mutex guards the slice because assigner occupancy requests read
// it from other goroutines than the student request that appends to
// it.
type Reservations struct {
	mu   sync.RWMutex
	list []model.Reservation
}

// NewReservations returns an empty store.
func NewReservations() *Reservations {
	return &Reservations{}
}

// Append records an accepted booking at the head of the log.
func (s *Reservations) Append(r model.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = append([]model.Reservation{r}, s.list...)
}

// Cancel transitions the reservation with the given id from upcoming
// to cancelled.  Unknown ids and reservations that are not upcoming
// are left untouched; the call is a no-op then, never an error.
// It reports whether a transition happened.
func (s *Reservations) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.list {
		if s.list[i].ID == id && s.list[i].Status == model.ReservationUpcoming {
			s.list[i].Status = model.ReservationCancelled
			return true
		}
	}
	return false
}

// All returns a copy of the full log, newest first.
func (s *Reservations) All() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, len(s.list))
	copy(out, s.list)
	return out
}

// Upcoming returns the reservations still in the upcoming state.
func (s *Reservations) Upcoming() []model.Reservation {
	return s.filter(true)
}

// History returns everything that is no longer upcoming, i.e.
// cancelled or completed bookings.
func (s *Reservations) History() []model.Reservation {
	return s.filter(false)
}

func (s *Reservations) filter(upcoming bool) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, 0, len(s.list))
	for _, r := range s.list {
		if (r.Status == model.ReservationUpcoming) == upcoming {
			out = append(out, r)
		}
	}
	return out
}

// Get returns the reservation with the given id.
func (s *Reservations) Get(id string) (model.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.list {
		if r.ID == id {
			return r, true
		}
	}
	return model.Reservation{}, false
}
