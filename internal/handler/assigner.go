package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/session"
	"github.com/studyspaces/classroom-reservation/internal/store"
)

// AssignerHandler serves the space-administrator views: the occupancy
// dashboard and per-room allocation details.  Statuses derive from
// live reservation state across all sessions.
type AssignerHandler struct {
	Catalog  *store.Catalog
	Sessions *session.Manager
	Now      func() time.Time
}

func NewAssignerHandler(catalog *store.Catalog, sessions *session.Manager) *AssignerHandler {
	return &AssignerHandler{Catalog: catalog, Sessions: sessions, Now: time.Now}
}

type occupancyRow struct {
	Room   model.Room       `json:"room"`
	Status model.RoomStatus `json:"status"`
}

// Occupancy handles GET /v1/assigner/occupancy, one row per room.
func (h *AssignerHandler) Occupancy(c echo.Context) error {
	now := h.Now()
	rooms := h.Catalog.All()
	rows := make([]occupancyRow, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, occupancyRow{
			Room:   room,
			Status: h.Sessions.RoomStatus(room.ID, now),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"occupancy": rows})
}

// Allocation handles GET /v1/assigner/allocations/:id, showing who
// holds the room right now.  Unknown rooms render the empty state the
// client expects, a 404 with a message.
func (h *AssignerHandler) Allocation(c echo.Context) error {
	room, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, h.Sessions.Allocation(room, h.Now()))
}
