package main // HTTP server entry point

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/juanfer112/reservaPlaza-back-end/internal/booking"
	"github.com/juanfer112/reservaPlaza-back-end/internal/config"
	"github.com/juanfer112/reservaPlaza-back-end/internal/database"
	"github.com/juanfer112/reservaPlaza-back-end/internal/handler"
	"github.com/juanfer112/reservaPlaza-back-end/internal/repository"
	"github.com/juanfer112/reservaPlaza-back-end/internal/router"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter; nil degrades
	// both to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	enterprises := repository.NewEnterpriseRepo(db)
	tokens := repository.NewTokenRepo(db)
	schedules := repository.NewScheduleRepo(db)
	spaces := repository.NewSpaceRepo(db)
	spacetypes := repository.NewSpacetypeRepo(db)
	brands := repository.NewBrandRepo(db)
	equipments := repository.NewEquipmentRepo(db)

	coordinator := booking.NewCoordinator(schedules, nil)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, enterprises, tokens), cfg.JWTSecret)
	router.RegisterSchedules(e, handler.NewScheduleHandler(coordinator, schedules), cfg.JWTSecret, rdb)
	router.RegisterCatalog(e, handler.NewSpacetypeHandler(spacetypes), handler.NewSpaceHandler(spaces, spacetypes), handler.NewEquipmentHandler(equipments, spaces), cfg.JWTSecret)
	router.RegisterAccounts(e, handler.NewEnterpriseHandler(enterprises), handler.NewBrandHandler(brands), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
