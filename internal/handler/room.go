package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/store"
	"github.com/studyspaces/classroom-reservation/internal/tip"
)

// RoomHandler serves the room catalog: browse, filtered search and the
// detail view with its study tip.
type RoomHandler struct {
	Catalog *store.Catalog
	Tips    *tip.Provider
}

func NewRoomHandler(catalog *store.Catalog, tips *tip.Provider) *RoomHandler {
	return &RoomHandler{Catalog: catalog, Tips: tips}
}

// Search handles GET /v1/rooms.  Query parameters map onto
// SearchFilters: building (empty = any), time_slot, capacity
// (minimum seats).  An empty result is a 200 with an empty list, never
// an error.
func (h *RoomHandler) Search(c echo.Context) error {
	filters := model.SearchFilters{
		Building: c.QueryParam("building"),
		TimeSlot: c.QueryParam("time_slot"),
		Capacity: 1,
	}
	if s := c.QueryParam("capacity"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be a positive integer"})
		}
		filters.Capacity = n
	}
	rooms := h.Catalog.Search(filters)
	return c.JSON(http.StatusOK, echo.Map{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// Buildings handles GET /v1/buildings, feeding the filter screen's
// building picker.
func (h *RoomHandler) Buildings(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"buildings": h.Catalog.Buildings()})
}

// Get handles GET /v1/rooms/:id.  The response includes a short study
// tip for the room's building; the tip call is best-effort and rides
// on the request context, so navigating away simply abandons it.
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room":      room,
		"study_tip": h.Tips.StudyTip(c.Request().Context(), room.Building),
	})
}
