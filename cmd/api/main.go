// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/taskhabit/internal/admin"
	"github.com/carterperez-dev/taskhabit/internal/auth"
	"github.com/carterperez-dev/taskhabit/internal/coach"
	"github.com/carterperez-dev/taskhabit/internal/config"
	"github.com/carterperez-dev/taskhabit/internal/core"
	"github.com/carterperez-dev/taskhabit/internal/health"
	"github.com/carterperez-dev/taskhabit/internal/middleware"
	"github.com/carterperez-dev/taskhabit/internal/notify"
	"github.com/carterperez-dev/taskhabit/internal/persist"
	"github.com/carterperez-dev/taskhabit/internal/reminder"
	"github.com/carterperez-dev/taskhabit/internal/reward"
	"github.com/carterperez-dev/taskhabit/internal/server"
	"github.com/carterperez-dev/taskhabit/internal/session"
	"github.com/carterperez-dev/taskhabit/internal/store"
	"github.com/carterperez-dev/taskhabit/internal/task"
	"github.com/carterperez-dev/taskhabit/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"store_backend", cfg.Store.Backend,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	backend, err := persist.Open(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("snapshot store ready", "backend", backend.Name)

	var redisClient *redis.Client
	if backend.Redis != nil {
		redisClient = backend.Redis.Client
	}

	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if cfg.Notify.Backend == "redis" {
		notifier = notify.NewRedisNotifier(redisClient, cfg.Notify.Queue)
	}

	var generator coach.Generator = coach.Disabled{}
	if cfg.Coach.Enabled {
		gemini, genErr := coach.NewGeminiGenerator(ctx, cfg.Coach.APIKey, cfg.Coach.Model)
		if genErr != nil {
			return genErr
		}
		generator = gemini
		logger.Info("AI coach enabled", "model", cfg.Coach.Model)
	}

	adapter := persist.NewAdapter(backend.KV)

	st := store.New(store.Config{
		Resolver: session.NewResolver(session.Config{
			Adapter:    adapter,
			AdminEmail: cfg.Store.AdminEmail,
			Delay:      cfg.Store.LoginDelay,
			Timezone:   cfg.Store.Timezone,
			Logger:     logger,
		}),
		Adapter:           adapter,
		Notifier:          notifier,
		AdminEmail:        cfg.Store.AdminEmail,
		SubscriptionDelay: cfg.Notify.SubscriptionDelay,
		Logger:            logger,
	})

	resumed, err := st.Resume(ctx)
	if err != nil {
		logger.Warn("could not resume previous session", "error", err)
	} else if resumed {
		logger.Info("previous session resumed", "email", st.ActiveEmail())
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.KeyID(),
		"ephemeral", cfg.JWT.PrivateKeyPath == "",
	)

	healthHandler := health.NewHandler(map[string]health.Checker{
		"store": health.CheckerFunc(backend.Ping),
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(jwtManager)
	activeSession := middleware.RequireSession(st.ActiveEmail)

	authHandler := auth.NewHandler(st, jwtManager)
	userHandler := user.NewHandler(st)
	taskHandler := task.NewHandler(st)
	rewardHandler := reward.NewHandler(st)
	coachHandler := coach.NewHandler(coach.New(generator, logger), st)
	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Store:        st,
		Backend:      backend.Name,
		BackendPing:  backend.Ping,
		CoachEnabled: cfg.Coach.Enabled,
	})

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(activeSession)

			userHandler.RegisterRoutes(r)
			taskHandler.RegisterRoutes(r)
			rewardHandler.RegisterRoutes(r)
			coachHandler.RegisterRoutes(
				r,
				middleware.TieredRateLimiter(
					redisClient,
					middleware.CoachTiers,
					storeTier(st),
				),
			)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				adminHandler.RegisterRoutes(r)
			})
		})
	})

	if cfg.Reminder.Enabled {
		scheduler := reminder.NewScheduler(reminder.Config{
			Source:   st,
			Notifier: notifier,
			Interval: cfg.Reminder.Interval,
			Lead:     cfg.Reminder.Lead,
			Logger:   logger,
		})
		go scheduler.Run(ctx)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := backend.Close(); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// storeTier reads the membership from the active profile so tier changes
// apply without a fresh token.
func storeTier(st *store.Store) middleware.TierFunc {
	return func(r *http.Request) string {
		u, err := st.User()
		if err != nil {
			return middleware.TierFromClaim(r)
		}
		return string(u.Membership)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
