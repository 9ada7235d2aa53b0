package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"sentimock/internal/config"
	"sentimock/internal/dispatch"
	"sentimock/internal/domain"
	"sentimock/internal/logging"
	"sentimock/internal/redis"
	"sentimock/internal/sentiment"
	"sentimock/internal/server"
	"sentimock/internal/store"
	"sentimock/internal/token"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRedis(cfg *config.Config) *goredis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

// setupUserStore picks the Redis-backed store when REDIS_URL is set, the
// in-memory store otherwise, and seeds the fixture account the frontend's
// login form is preloaded with.
func setupUserStore(cfg *config.Config, redisClient *goredis.Client, clock clockwork.Clock) domain.UserStore {
	var users domain.UserStore
	if redisClient != nil {
		users = redis.NewUserStore(redisClient, clock)
	} else {
		users = store.NewMemoryStore(clock)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := users.FindByEmail(ctx, cfg.SeedEmail); err == nil {
		return users
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		slog.Error("Failed to check seed account", "error", err)
		os.Exit(1)
	}

	account, err := users.Add(ctx, cfg.SeedEmail, cfg.SeedPassword)
	if err != nil {
		slog.Error("Failed to seed account", "error", err)
		os.Exit(1)
	}
	slog.Info("Seeded fixture account", "account_id", account.ID, "email", account.Email)

	return users
}

func setupScorer(cfg *config.Config) domain.Scorer {
	if cfg.SentimentEngine == config.EngineVader {
		return sentiment.NewVaderScorer()
	}
	return sentiment.NewLexiconScorer()
}

func runGracefulShutdown(srv *server.Server, redisClient *goredis.Client) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "engine", cfg.SentimentEngine)

	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient = setupRedis(cfg)
	}

	users := setupUserStore(cfg, redisClient, clock)

	dispatcher := dispatch.New(
		users,
		token.NewService(),
		setupScorer(cfg),
		clock,
		time.Duration(cfg.AnalyzeDelayMs)*time.Millisecond,
	)

	srv := server.NewServer(cfg, dispatcher, redisClient, clock)

	done := runGracefulShutdown(srv, redisClient)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
