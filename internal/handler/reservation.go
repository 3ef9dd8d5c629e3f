package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/policy"
	"github.com/studyspaces/classroom-reservation/internal/queue"
	queue_publisher "github.com/studyspaces/classroom-reservation/internal/service"
	"github.com/studyspaces/classroom-reservation/internal/session"
	"github.com/studyspaces/classroom-reservation/internal/store"
)

// Publisher emits a confirmed-booking event.  Swapped out in tests.
type Publisher func(ctx context.Context, event queue.ReservationConfirmedEvent) error

// ReservationHandler drives the booking flow: evaluate the policy,
// append accepted bookings to the session's store, cancel, and list.
type ReservationHandler struct {
	Catalog  *store.Catalog
	Engine   *policy.BookingEngine
	Sessions *session.Manager
	Publish  Publisher
}

func NewReservationHandler(catalog *store.Catalog, engine *policy.BookingEngine, sessions *session.Manager) *ReservationHandler {
	return &ReservationHandler{
		Catalog:  catalog,
		Engine:   engine,
		Sessions: sessions,
		Publish:  queue_publisher.PublishReservationConfirmed,
	}
}

type bookReq struct {
	RoomID string `json:"room_id"`
	// AcknowledgeWarning lets the client proceed past a double-booking
	// warning.  It never overrides the reservation limit.
	AcknowledgeWarning bool `json:"acknowledge_warning"`
}

// Book handles POST /v1/reservations.  Outcomes:
//
//	201 - accepted, body carries the new reservation
//	409 - code "double_booked": a warning; retry with
//	      acknowledge_warning=true to proceed
//	409 - code "limit_reached": hard stop
//	404 - unknown room id
func (h *ReservationHandler) Book(c echo.Context) error {
	s := currentSession(c, h.Sessions)
	if s == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil || req.RoomID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}
	room, err := h.Catalog.Get(req.RoomID)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}

	decision := h.Engine.Evaluate(s.Reservations().All(), room, req.AcknowledgeWarning)
	switch decision.Code {
	case policy.BookingDoubleBooked:
		return c.JSON(http.StatusConflict, echo.Map{
			"code":        decision.Code,
			"error":       decision.Message,
			"proceedable": true,
		})
	case policy.BookingLimitReached:
		return c.JSON(http.StatusConflict, echo.Map{
			"code":        decision.Code,
			"error":       decision.Message,
			"proceedable": false,
		})
	}

	res := h.Engine.Build(room)
	s.Reservations().Append(res)

	// Fire-and-forget: the booking stands whether or not the event
	// lands on the broker.
	user := s.Identity()
	go func(r model.Reservation, u model.User) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Publish(ctx, queue.ReservationConfirmedEvent{
			ReservationID: r.ID,
			UserEmail:     u.Email,
			StudentID:     u.StudentID,
			RoomID:        r.Room.ID,
			RoomNumber:    r.Room.RoomNumber,
			Building:      r.Room.Building,
			Date:          r.Date,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			ConfirmedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}(res, user)

	return c.JSON(http.StatusCreated, res)
}

// List handles GET /v1/reservations.  The view query parameter picks
// "upcoming" (default), "history" or "all".
func (h *ReservationHandler) List(c echo.Context) error {
	s := currentSession(c, h.Sessions)
	if s == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	}
	var out []model.Reservation
	switch c.QueryParam("view") {
	case "", "upcoming":
		out = s.Reservations().Upcoming()
	case "history":
		out = s.Reservations().History()
	case "all":
		out = s.Reservations().All()
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "view must be upcoming, history or all"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": out, "count": len(out)})
}

// Cancel handles POST /v1/reservations/:id/cancel.  Cancelling is
// idempotent: unknown ids and already-cancelled reservations answer
// 204 just like a real transition does.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	s := currentSession(c, h.Sessions)
	if s == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	}
	s.Reservations().Cancel(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
