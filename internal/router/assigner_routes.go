package router

import (
	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/handler"
	"github.com/studyspaces/classroom-reservation/internal/middleware"
	"github.com/studyspaces/classroom-reservation/internal/model"
)

// RegisterAssigner registers the occupancy monitoring endpoints,
// reachable only with an assigner session.
func RegisterAssigner(e *echo.Echo, a *handler.AssignerHandler, jwtSecret string) {
	g := e.Group("/v1/assigner")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAssigner))

	g.GET("/occupancy", a.Occupancy)
	g.GET("/allocations/:id", a.Allocation)
}
