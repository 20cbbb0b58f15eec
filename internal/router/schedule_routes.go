package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/juanfer112/reservaPlaza-back-end/internal/config"
	"github.com/juanfer112/reservaPlaza-back-end/internal/handler"
	"github.com/juanfer112/reservaPlaza-back-end/internal/middleware"
)

// RegisterSchedules registers the booking surface under /v1. Every
// route requires a valid JWT. The window endpoint is cached and the
// whole group is rate limited; both degrade to pass-through when no
// Redis client is available.
func RegisterSchedules(e *echo.Echo, s *handler.ScheduleHandler, jwtSecret string, rdb *redis.Client) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "ENTERPRISE"),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)

	// The three-week availability window around ?date=.
	g.GET("/schedules", s.Window, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	// The caller's own bookings.
	g.GET("/schedules/mine", s.Mine)
	// Atomic batch booking.
	g.POST("/schedules", s.Book)
	// Slot edit with conflict re-check.
	g.PUT("/schedules/:id", s.Update)
	g.PATCH("/schedules/:id", s.Update)
}
