package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"sentimock/internal/config"
	"sentimock/internal/dispatch"
)

// redisHealthChecker is a minimal interface for Redis health checks.
type redisHealthChecker interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	dispatcher  *dispatch.Dispatcher
	clock       clockwork.Clock
	redisClient redisHealthChecker
	startTime   time.Time
}

// NewServer wires the echo instance, middleware, and routes. redisClient is
// nil when the in-memory store is active; readiness then skips the Redis ping.
func NewServer(cfg *config.Config, dispatcher *dispatch.Dispatcher, redisClient *goredis.Client, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	srv := &Server{
		echo:       e,
		config:     cfg,
		dispatcher: dispatcher,
		clock:      clock,
		startTime:  clock.Now(),
	}
	if redisClient != nil {
		srv.redisClient = redisClient
	}

	srv.registerRoutes()

	return srv
}

// rateLimiter caps the GraphQL endpoint; burst is twice the sustained rate so
// an SPA booting several queries at once is not rejected.
func (s *Server) rateLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(s.config.RateLimitRPS),
			Burst: int(s.config.RateLimitRPS * 2),
		},
	))
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
