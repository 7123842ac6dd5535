package queue

import (
	"context"

	"timegrid/core/constants"
	"timegrid/core/logger"

	"github.com/hibiken/asynq"
)

// Queue owns the asynq worker and scheduler used for background
// maintenance work (currently the daily expired-event purge).
type Queue struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

type QueueConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func NewQueue(config QueueConfig) *Queue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
	})
	scheduler := asynq.NewScheduler(redisOpt, nil)

	return &Queue{
		server:    server,
		scheduler: scheduler,
		mux:       asynq.NewServeMux(),
	}
}

// HandleFunc registers a task handler by type name.
func (q *Queue) HandleFunc(taskType string, handler func(ctx context.Context, t *asynq.Task) error) {
	q.mux.HandleFunc(taskType, handler)
}

// Start launches the worker and the cron scheduler. Non-blocking.
func (q *Queue) Start() error {
	if _, err := q.scheduler.Register(constants.EventCleanupCron, asynq.NewTask(constants.TaskEventCleanup, nil)); err != nil {
		return err
	}

	go func() {
		if err := q.server.Run(q.mux); err != nil {
			logger.Error("queue: worker stopped", err)
		}
	}()
	go func() {
		if err := q.scheduler.Run(); err != nil {
			logger.Error("queue: scheduler stopped", err)
		}
	}()

	logger.Info("Queue started", "cleanup_cron", constants.EventCleanupCron)
	return nil
}

func (q *Queue) Shutdown() {
	q.scheduler.Shutdown()
	q.server.Shutdown()
}
