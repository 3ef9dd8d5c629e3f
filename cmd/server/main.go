package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/config"
	"github.com/studyspaces/classroom-reservation/internal/database"
	"github.com/studyspaces/classroom-reservation/internal/handler"
	"github.com/studyspaces/classroom-reservation/internal/policy"
	"github.com/studyspaces/classroom-reservation/internal/repository"
	"github.com/studyspaces/classroom-reservation/internal/router"
	"github.com/studyspaces/classroom-reservation/internal/session"
	"github.com/studyspaces/classroom-reservation/internal/store"
	"github.com/studyspaces/classroom-reservation/internal/tip"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Redis is optional: a nil client disables rate limiting and the
	// tip cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and tip cache disabled")
	}

	users := repository.NewUserRepo(db)
	sessions := session.NewManager()
	catalog := store.DefaultCatalog()
	engine := policy.NewBookingEngine(nil)
	tips := tip.New(cfg.TipAPIURL, cfg.TipAPIKey, cfg.TipModel, rdb)

	authH := handler.NewAuthHandler(cfg, users, sessions)
	roomH := handler.NewRoomHandler(catalog, tips)
	resH := handler.NewReservationHandler(catalog, engine, sessions)
	navH := handler.NewNavigationHandler(policy.DefaultRoutes(), sessions, cfg.JWTSecret)
	assignH := handler.NewAssignerHandler(catalog, sessions)

	e := echo.New()
	router.RegisterRoutes(e, navH)
	router.RegisterAuth(e, authH, config.LoadRateLimitConfig(), rdb)
	router.RegisterStudent(e, roomH, resH, cfg.JWTSecret)
	router.RegisterAssigner(e, assignH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
