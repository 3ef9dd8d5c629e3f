package model

// SearchFilters narrows a room search.  Filters are transient and
// session-scoped; they are never persisted.
//
// Fields:
//  Building - exact building name, empty means any building.
//  TimeSlot - display label for the requested slot (e.g. "Now").
//  Capacity - minimum seat count; rooms below it are excluded.
type SearchFilters struct {
	Building string `json:"building"`
	TimeSlot string `json:"time_slot"`
	Capacity int    `json:"capacity"`
}

// Matches reports whether the room satisfies the filters.
func (f SearchFilters) Matches(r Room) bool {
	if f.Building != "" && r.Building != f.Building {
		return false
	}
	return r.Capacity >= f.Capacity
}
