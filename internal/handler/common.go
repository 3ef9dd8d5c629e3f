package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/middleware"
	"github.com/studyspaces/classroom-reservation/internal/session"
)

// currentSession resolves the live session for the authenticated
// subject, or nil when the token outlived its session (e.g. after a
// restart or logout).
func currentSession(c echo.Context, m *session.Manager) *session.Session {
	subject, ok := c.Get(middleware.CtxSubject).(string)
	if !ok || subject == "" {
		return nil
	}
	return m.Get(subject)
}
