package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyspaces/classroom-reservation/internal/middleware"
	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/policy"
	"github.com/studyspaces/classroom-reservation/internal/queue"
	"github.com/studyspaces/classroom-reservation/internal/session"
	"github.com/studyspaces/classroom-reservation/internal/store"
)

const testSubject = "a@university.edu"

func fixedClock() policy.Clock {
	at := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

// testReservationHandler wires the handler against an in-memory world
// and captures published events on a channel.
func testReservationHandler() (*ReservationHandler, chan queue.ReservationConfirmedEvent) {
	sessions := session.NewManager()
	sessions.Start(model.User{
		Name:      "Shreeja Kulkarni",
		Email:     testSubject,
		Role:      model.RoleStudent,
		StudentID: "#82910442",
	})
	h := NewReservationHandler(store.DefaultCatalog(), policy.NewBookingEngine(fixedClock()), sessions)

	events := make(chan queue.ReservationConfirmedEvent, 8)
	h.Publish = func(_ context.Context, e queue.ReservationConfirmedEvent) error {
		events <- e
		return nil
	}
	return h, events
}

func jsonCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxSubject, testSubject)
	c.Set(middleware.CtxRole, "student")
	return c, rec
}

func book(t *testing.T, e *echo.Echo, h *ReservationHandler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	c, rec := jsonCtx(e, http.MethodPost, "/v1/reservations", body)
	require.NoError(t, h.Book(c))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestReservationHandler_Book(t *testing.T) {
	e := echo.New()

	t.Run("Should accept a first booking", func(t *testing.T) {
		h, events := testReservationHandler()
		rec, out := book(t, e, h, `{"room_id":"1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "upcoming", out["status"])
		assert.Equal(t, "1", out["room"].(map[string]any)["id"])
		assert.Equal(t, "2:00 PM", out["start_time"])
		assert.Equal(t, "4:00 PM", out["end_time"])

		select {
		case ev := <-events:
			assert.Equal(t, "1", ev.RoomID)
			assert.Equal(t, testSubject, ev.UserEmail)
			assert.NotEmpty(t, ev.ReservationID)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a confirmed event")
		}
	})

	t.Run("Should flag a double-booking as proceedable", func(t *testing.T) {
		h, _ := testReservationHandler()
		rec, _ := book(t, e, h, `{"room_id":"1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, out := book(t, e, h, `{"room_id":"1"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "double_booked", out["code"])
		assert.Equal(t, true, out["proceedable"])

		// Acknowledging the warning lets the booking through.
		rec, out = book(t, e, h, `{"room_id":"1","acknowledge_warning":true}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "upcoming", out["status"])
	})

	t.Run("Should hard-stop at the reservation limit", func(t *testing.T) {
		h, _ := testReservationHandler()
		for _, id := range []string{"1", "2"} {
			rec, _ := book(t, e, h, `{"room_id":"`+id+`"}`)
			require.Equal(t, http.StatusCreated, rec.Code)
		}
		rec, out := book(t, e, h, `{"room_id":"3"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "limit_reached", out["code"])
		assert.Equal(t, false, out["proceedable"])

		// The limit cannot be acknowledged away.
		rec, out = book(t, e, h, `{"room_id":"3","acknowledge_warning":true}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "limit_reached", out["code"])
	})

	t.Run("Should answer 404 for an unknown room", func(t *testing.T) {
		h, _ := testReservationHandler()
		rec, _ := book(t, e, h, `{"room_id":"999"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Should require a room id", func(t *testing.T) {
		h, _ := testReservationHandler()
		rec, _ := book(t, e, h, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should reject tokens without a live session", func(t *testing.T) {
		h, _ := testReservationHandler()
		c, rec := jsonCtx(e, http.MethodPost, "/v1/reservations", `{"room_id":"1"}`)
		c.Set(middleware.CtxSubject, "gone@university.edu")
		require.NoError(t, h.Book(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestReservationHandler_CancelAndList(t *testing.T) {
	e := echo.New()
	h, _ := testReservationHandler()

	rec, out := book(t, e, h, `{"room_id":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	resID := out["id"].(string)

	listLen := func(view string) int {
		c, rec := jsonCtx(e, http.MethodGet, "/v1/reservations?view="+view, "")
		require.NoError(t, h.List(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return int(body["count"].(float64))
	}

	assert.Equal(t, 1, listLen("upcoming"))
	assert.Equal(t, 0, listLen("history"))

	cancel := func(id string) int {
		c, rec := jsonCtx(e, http.MethodPost, "/v1/reservations/"+id+"/cancel", "")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.Cancel(c))
		return rec.Code
	}

	t.Run("Should move a cancelled booking into history", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, cancel(resID))
		assert.Equal(t, 0, listLen("upcoming"))
		assert.Equal(t, 1, listLen("history"))
	})
	t.Run("Should stay idempotent on repeat and unknown cancels", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, cancel(resID))
		assert.Equal(t, http.StatusNoContent, cancel("missing"))
		assert.Equal(t, 1, listLen("history"))
		assert.Equal(t, 1, listLen("all"))
	})
	t.Run("Should reject unknown views", func(t *testing.T) {
		c, rec := jsonCtx(e, http.MethodGet, "/v1/reservations?view=junk", "")
		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
