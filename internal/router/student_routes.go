package router

import (
	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/handler"
	"github.com/studyspaces/classroom-reservation/internal/middleware"
	"github.com/studyspaces/classroom-reservation/internal/model"
)

// RegisterStudent registers the room search and booking endpoints.
// All of them require a student session.
func RegisterStudent(e *echo.Echo, rooms *handler.RoomHandler, res *handler.ReservationHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleStudent))

	g.GET("/rooms", rooms.Search)
	g.GET("/rooms/:id", rooms.Get)
	g.GET("/buildings", rooms.Buildings)

	g.POST("/reservations", res.Book)
	g.GET("/reservations", res.List)
	g.POST("/reservations/:id/cancel", res.Cancel)
}
