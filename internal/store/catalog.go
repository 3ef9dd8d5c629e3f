package store

import (
	"errors"
	"sort"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

// ErrRoomNotFound is returned when a room id has no entry in the
// catalog.  Handlers translate it into an empty-state response rather
// than a hard failure.
var ErrRoomNotFound = errors.New("room not found")

// Catalog holds the static set of bookable rooms.  The catalog is
// read-only after construction; the booking flow never mutates it.
type Catalog struct {
	rooms []model.Room
	byID  map[string]model.Room
}

// NewCatalog builds a catalog from the given rooms.  Later duplicates
// of the same id are ignored.
func NewCatalog(rooms []model.Room) *Catalog {
	c := &Catalog{byID: make(map[string]model.Room, len(rooms))}
	for _, r := range rooms {
		if _, ok := c.byID[r.ID]; ok {
			continue
		}
		c.byID[r.ID] = r
		c.rooms = append(c.rooms, r)
	}
	return c
}

// DefaultCatalog returns the campus study-space catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultRooms)
}

// Get looks a room up by id.
func (c *Catalog) Get(id string) (model.Room, error) {
	r, ok := c.byID[id]
	if !ok {
		return model.Room{}, ErrRoomNotFound
	}
	return r, nil
}

// All returns every room in catalog order.
func (c *Catalog) All() []model.Room {
	out := make([]model.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// Search returns the rooms matching the given filters, in catalog
// order.  An empty result is not an error.
func (c *Catalog) Search(f model.SearchFilters) []model.Room {
	out := make([]model.Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Buildings returns the distinct building names, sorted.
func (c *Catalog) Buildings() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.rooms {
		if _, ok := seen[r.Building]; ok {
			continue
		}
		seen[r.Building] = struct{}{}
		out = append(out, r.Building)
	}
	sort.Strings(out)
	return out
}

// defaultRooms mirrors the campus pilot data set.
var defaultRooms = []model.Room{
	{
		ID:             "1",
		RoomNumber:     "304",
		Building:       "Science Hall",
		Capacity:       25,
		AvailableUntil: "4:00 PM",
		Amenities:      []string{"Whiteboard", "Power Outlets", "Projector"},
		ImageURL:       "https://picsum.photos/seed/room1/800/400",
	},
	{
		ID:             "2",
		RoomNumber:     "102B",
		Building:       "Main Library",
		Capacity:       4,
		AvailableUntil: "6:30 PM",
		Amenities:      []string{"Power Outlets", "Quiet Zone"},
		ImageURL:       "https://picsum.photos/seed/room2/800/400",
	},
	{
		ID:             "3",
		RoomNumber:     "401",
		Building:       "Engineering Wing",
		Capacity:       50,
		AvailableUntil: "2:00 PM",
		Amenities:      []string{"Whiteboard", "Ethernet", "Dual Monitors"},
		ImageURL:       "https://picsum.photos/seed/room3/800/400",
	},
	{
		ID:             "4",
		RoomNumber:     "Studio 5",
		Building:       "Arts Complex",
		Capacity:       10,
		AvailableUntil: "8:00 PM",
		Amenities:      []string{"Large Tables", "Natural Light"},
		ImageURL:       "https://picsum.photos/seed/room4/800/400",
	},
}
