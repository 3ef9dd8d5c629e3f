package model

// RoomStatus describes the occupancy of a room as seen on the
// assigner dashboard.
type RoomStatus string

const (
	StatusAvailable RoomStatus = "available"
	StatusReserved  RoomStatus = "reserved"
	StatusOccupied  RoomStatus = "occupied"
)

// Room is a bookable study space.  Rooms are static reference data:
// nothing in the booking flow ever mutates them.
//
// Fields:
//  ID             - unique room identifier.
//  RoomNumber     - human-readable room label (e.g. "304", "Studio 5").
//  Building       - building the room belongs to.
//  Capacity       - number of seats; always positive.
//  AvailableUntil - display marker for how long the room stays open.
//  Amenities      - amenity labels shown on the detail view.
//  ImageURL       - reference to a photo of the room.
type Room struct {
	ID             string   `json:"id"`
	RoomNumber     string   `json:"room_number"`
	Building       string   `json:"building"`
	Capacity       int      `json:"capacity"`
	AvailableUntil string   `json:"available_until"`
	Amenities      []string `json:"amenities"`
	ImageURL       string   `json:"image_url"`
}

// Allocation describes who currently holds a room, shown on the
// assigner's allocation detail view.
type Allocation struct {
	Room        Room       `json:"room"`
	Status      RoomStatus `json:"status"`
	HolderName  string     `json:"holder_name,omitempty"`
	HolderEmail string     `json:"holder_email,omitempty"`
	StudentID   string     `json:"student_id,omitempty"`
	StartTime   string     `json:"start_time,omitempty"`
	EndTime     string     `json:"end_time,omitempty"`
}
