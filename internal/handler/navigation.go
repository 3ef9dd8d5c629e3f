package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/middleware"
	"github.com/studyspaces/classroom-reservation/internal/policy"
	"github.com/studyspaces/classroom-reservation/internal/session"
)

// NavigationHandler exposes the route access policy to the client.
// The endpoint serves anonymous and signed-in sessions alike, so the
// bearer token is optional here.
type NavigationHandler struct {
	Routes    policy.RouteTable
	Sessions  *session.Manager
	JWTSecret string
}

func NewNavigationHandler(routes policy.RouteTable, sessions *session.Manager, jwtSecret string) *NavigationHandler {
	return &NavigationHandler{Routes: routes, Sessions: sessions, JWTSecret: jwtSecret}
}

type navigateReq struct {
	Route string `json:"route"`
	// OnboardingDone reflects the client's first-run state; the
	// introduction screen lives entirely on the device.
	OnboardingDone bool `json:"onboarding_done"`
}

// Navigate handles POST /v1/navigate: given the requested route and
// the session's state, answer allow or redirect.  The decision is
// pure, so the same request always yields the same answer.
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var req navigateReq
	if err := c.Bind(&req); err != nil || req.Route == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "route is required"})
	}

	view := policy.SessionView{OnboardingDone: req.OnboardingDone}
	if subject, _ := middleware.OptionalSubject(c, h.JWTSecret); subject != "" {
		if s := h.Sessions.Get(subject); s != nil {
			identity := s.Identity()
			view.Identity = &identity
		}
	}

	decision := h.Routes.Evaluate(view, req.Route)
	return c.JSON(http.StatusOK, decision)
}

// RouteTable handles GET /v1/routes, returning the partitioned route
// configuration so the client can mirror it locally.
func (h *NavigationHandler) RouteTable(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"public":        h.Routes.Public,
		"student":       h.Routes.Student,
		"assigner":      h.Routes.Assigner,
		"student_home":  h.Routes.StudentHome,
		"assigner_home": h.Routes.AssignerHome,
	})
}
