package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"timegrid/core/cache"
	"timegrid/core/config"
	"timegrid/core/constants"
	"timegrid/core/database"
	"timegrid/core/logger"
	"timegrid/core/middleware"
	"timegrid/core/queue"
	"timegrid/modules/availability"
	"timegrid/modules/event"
	eventrepo "timegrid/modules/event/repository"
	"timegrid/modules/participant"
	participantrepo "timegrid/modules/participant/repository"
)

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validator.Struct(i)
}

// Run boots the full application: config, postgres, redis, the three
// modules, the cleanup worker, and the HTTP listener. Blocks until a
// termination signal, then shuts everything down in reverse order.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err := config.GetSafe()
	if err != nil {
		return err
	}

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	c, err := cache.NewCache(cache.CacheConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = constants.DefaultRequestTimeout
	e.Server.WriteTimeout = constants.DefaultRequestTimeout
	e.Validator = &requestValidator{validator: validator.New()}

	mw := middleware.NewMiddleware()
	e.Use(mw.RequestLogger())
	e.Use(mw.Recover())
	e.Use(mw.CORS())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Repositories are shared across modules: the event repository is
	// the availability engine's schedule source and the participant
	// repository is its participant source.
	evRepo := eventrepo.NewEventRepository(db)
	pRepo := participantrepo.NewParticipantRepository(db)

	availSvc := availability.Init(e, db, c, evRepo, pRepo)
	evSvc := event.Init(e, evRepo, c, availSvc)
	participant.Init(e, pRepo, evRepo, availSvc)

	q := queue.NewQueue(queue.QueueConfig{
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
	})
	q.HandleFunc(constants.TaskEventCleanup, func(ctx context.Context, t *asynq.Task) error {
		_, err := evSvc.CleanupExpired(ctx, cfg.Cleanup.RetentionDays)
		return err
	})
	if err := q.Start(); err != nil {
		return fmt.Errorf("start queue: %w", err)
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server: listener stopped", err)
		}
	}()
	logger.Info("Server started", "port", cfg.Server.Port, "env", cfg.Server.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server: shutdown", err)
	}

	q.Shutdown()
	availSvc.Close()
	if err := c.Close(); err != nil {
		logger.Error("server: cache close", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("server: database close", err)
	}
	return nil
}
