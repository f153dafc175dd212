package queue

//go:generate go run go.uber.org/mock/mockgen -source=./queue.go -destination=./mocks/queue_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"stayhub/config"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskBookingExpire = "booking:expire"

	expireTaskMaxRetry = 3
)

type ExpirePayload struct {
	BookingID string `json:"booking_id"`
}

// Dispatcher schedules single-shot delayed tasks. The periodic sweep remains the
// safety net, so enqueue failures are recoverable and callers may treat them as
// non-fatal.
type Dispatcher interface {
	EnqueueExpiration(ctx context.Context, bookingID string, processAt time.Time) error
	Close() error
}

type dispatcherImpl struct {
	client *asynq.Client
}

func redisOpt(config *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     net.JoinHostPort(config.Queue.Redis.Host, config.Queue.Redis.Port),
		Password: config.Queue.Redis.Password,
		DB:       config.Queue.Redis.DB,
	}
}

func NewDispatcher(config *config.Config) Dispatcher {
	if !config.Queue.Enable {
		log.Info().Msg("Task queue disabled, delayed expirations fall back to the periodic sweep")

		return &noopDispatcher{}
	}

	return &dispatcherImpl{client: asynq.NewClient(redisOpt(config))}
}

func (d *dispatcherImpl) EnqueueExpiration(ctx context.Context, bookingID string, processAt time.Time) error {
	payload, err := json.Marshal(ExpirePayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal expiration payload: %w", err)
	}

	task := asynq.NewTask(TaskBookingExpire, payload, asynq.MaxRetry(expireTaskMaxRetry))

	info, err := d.client.EnqueueContext(ctx, task, asynq.ProcessAt(processAt))
	if err != nil {
		return fmt.Errorf("failed to enqueue expiration task: %w", err)
	}

	log.Info().
		Str("task_id", info.ID).
		Str("booking_id", bookingID).
		Time("process_at", processAt).
		Msg("Enqueued booking expiration task")

	return nil
}

func (d *dispatcherImpl) Close() error {
	return d.client.Close() //nolint:wrapcheck
}

type noopDispatcher struct{}

func (d *noopDispatcher) EnqueueExpiration(_ context.Context, bookingID string, processAt time.Time) error {
	log.Debug().
		Str("booking_id", bookingID).
		Time("process_at", processAt).
		Msg("Task queue disabled, expiration left to the periodic sweep")

	return nil
}

func (d *noopDispatcher) Close() error {
	return nil
}

// Worker consumes delayed tasks. Handlers are registered per task type before Start.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(config *config.Config) *Worker {
	server := asynq.NewServer(redisOpt(config), asynq.Config{
		Concurrency: config.Queue.Concurrency,
		Logger:      zerologAdapter{},
	})

	return &Worker{
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

func (w *Worker) HandleExpiration(handler func(ctx context.Context, bookingID string) error) {
	w.mux.HandleFunc(TaskBookingExpire, func(ctx context.Context, task *asynq.Task) error {
		var payload ExpirePayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal expiration payload: %w", err)
		}

		return handler(ctx, payload.BookingID)
	})
}

func (w *Worker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("failed to start task worker: %w", err)
	}

	return nil
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

type zerologAdapter struct{}

func (zerologAdapter) Debug(args ...interface{}) { log.Debug().Msg(fmt.Sprint(args...)) }
func (zerologAdapter) Info(args ...interface{})  { log.Info().Msg(fmt.Sprint(args...)) }
func (zerologAdapter) Warn(args ...interface{})  { log.Warn().Msg(fmt.Sprint(args...)) }
func (zerologAdapter) Error(args ...interface{}) { log.Error().Msg(fmt.Sprint(args...)) }
func (zerologAdapter) Fatal(args ...interface{}) { log.Fatal().Msg(fmt.Sprint(args...)) }
