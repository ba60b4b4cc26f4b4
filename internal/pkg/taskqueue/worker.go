package taskqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	redisc "github.com/wahidu1/portfolio-core/internal/pkg/redis"
)

// HandlerFunc processes the payload of one task type.
type HandlerFunc func(ctx context.Context, payload []byte) error

// Worker is the consumer side of the queue: a pool of goroutines popping
// task ids from the pending list and dispatching them to registered
// handlers. Failures are logged and the task is marked failed; there is no
// retry.
type Worker struct {
	svc         *Service
	rc          *redisc.Client
	logger      *zap.Logger
	concurrency int
	handlers    map[string]HandlerFunc
}

func NewWorker(rc *redisc.Client, logger *zap.Logger, concurrency int) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{
		svc:         NewService(rc),
		rc:          rc,
		logger:      logger,
		concurrency: concurrency,
		handlers:    map[string]HandlerFunc{},
	}
}

// Register binds a handler to a task type. Must be called before Run.
func (w *Worker) Register(taskType string, fn HandlerFunc) {
	w.handlers[taskType] = fn
}

// Run blocks until ctx is cancelled, consuming tasks on w.concurrency
// goroutines.
func (w *Worker) Run(ctx context.Context) {
	done := make(chan struct{})
	for i := 0; i < w.concurrency; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			w.loop(ctx)
		}()
	}
	for i := 0; i < w.concurrency; i++ {
		<-done
	}
}

func (w *Worker) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := w.rc.Raw().BRPop(ctx, 2*time.Second, keyPending).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Warn("task queue pop failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if len(res) < 2 {
			continue
		}
		w.process(ctx, res[1])
	}
}

// process runs a single task to completion, recording the outcome.
func (w *Worker) process(ctx context.Context, id string) {
	task, err := w.svc.GetByID(ctx, id)
	if err != nil || task == nil {
		w.logger.Warn("task vanished before execution", zap.String("id", id), zap.Error(err))
		return
	}

	fn, ok := w.handlers[task.Type]
	if !ok {
		_ = w.svc.UpdateStatus(ctx, id, TaskFailed, fmt.Sprintf("no handler for type %q", task.Type))
		w.logger.Error("no handler registered for task type", zap.String("type", task.Type))
		return
	}

	_ = w.svc.UpdateStatus(ctx, id, TaskRunning, "")
	if err := fn(ctx, task.Payload); err != nil {
		_ = w.svc.UpdateStatus(ctx, id, TaskFailed, err.Error())
		w.logger.Error("task failed",
			zap.String("id", id),
			zap.String("type", task.Type),
			zap.Error(err),
		)
		return
	}
	_ = w.svc.UpdateStatus(ctx, id, TaskCompleted, "")
}
