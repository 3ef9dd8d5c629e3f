// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/studyspaces/classroom-reservation/internal/config"
	"github.com/studyspaces/classroom-reservation/internal/handler"
	"github.com/studyspaces/classroom-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication:
// the health check and the navigation decision endpoint.
func RegisterRoutes(e *echo.Echo, n *handler.NavigationHandler) {
	e.GET("/healthz", handler.Health)
	// Navigation serves anonymous clients too; the handler reads the
	// bearer token itself when one is present.
	e.POST("/v1/navigate", n.Navigate)
	e.GET("/v1/routes", n.RouteTable)
}

// RegisterAuth registers the account endpoints.  Sign-in, sign-up and
// password reset are rate limited; the session endpoints under /v1
// require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/auth")
	g.Use(middleware.RateLimit(rlCfg, rdb))
	g.POST("/signup", a.SignUp)
	g.POST("/signin", a.SignIn)
	g.POST("/forgot-password", a.ForgotPassword)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(a.Cfg.JWTSecret))
	auth.GET("/me", a.Me)
	auth.PATCH("/profile", a.UpdateProfile)
	auth.POST("/logout", a.Logout)
}
