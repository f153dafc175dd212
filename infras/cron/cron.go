package cron

//go:generate go run go.uber.org/mock/mockgen -source=./cron.go -destination=./mocks/cron_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"sync"
	"time"

	robfig "github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// JobFunc is a scheduled unit of work. Implementations must be idempotent: the
// scheduler may fire a job while a manual run of the same job is in flight.
type JobFunc func(ctx context.Context) error

type JobStatus struct {
	Name      string     `json:"name"`
	Schedule  string     `json:"schedule"`
	Desc      string     `json:"description"`
	Running   bool       `json:"running"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

// Scheduler runs registered jobs on cron schedules and supports stopping and
// resuming individual jobs without restarting the process.
type Scheduler interface {
	Register(name, spec, description string, fn JobFunc) error
	Start(name string) error
	Stop(name string) error
	StartAll()
	StopAll()
	Run(ctx context.Context, name string) error
	Status() []JobStatus
}

type job struct {
	name        string
	spec        string
	description string
	fn          JobFunc
	entryID     robfig.EntryID
	running     bool
	lastRun     *time.Time
	lastError   string
}

type schedulerImpl struct {
	cron *robfig.Cron
	mu   sync.Mutex
	jobs map[string]*job
	// order preserves registration order for Status output.
	order []string
}

func New() Scheduler {
	runner := robfig.New(robfig.WithLocation(timezone.GetLocation()))
	runner.Start()

	return &schedulerImpl{
		cron: runner,
		jobs: map[string]*job{},
	}
}

func (s *schedulerImpl) Register(name, spec, description string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s is already registered", name)
	}

	registered := &job{
		name:        name,
		spec:        spec,
		description: description,
		fn:          fn,
	}

	entryID, err := s.cron.AddFunc(spec, s.fire(name))
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	registered.entryID = entryID
	registered.running = true

	s.jobs[name] = registered
	s.order = append(s.order, name)

	log.Info().Str("job", name).Str("schedule", spec).Msg("Registered scheduled job")

	return nil
}

func (s *schedulerImpl) fire(name string) func() {
	return func() {
		if err := s.Run(context.Background(), name); err != nil {
			log.Error().Err(err).Str("job", name).Msg("Scheduled job run failed")
		}
	}
}

// Run executes the job immediately, independent of its schedule.
func (s *schedulerImpl) Run(ctx context.Context, name string) error {
	s.mu.Lock()

	registered, exists := s.jobs[name]
	if !exists {
		s.mu.Unlock()

		return failure.NotFound("job") //nolint:wrapcheck
	}

	fn := registered.fn
	s.mu.Unlock()

	started := timezone.Now()
	err := fn(ctx)

	s.mu.Lock()
	registered.lastRun = &started

	if err != nil {
		registered.lastError = err.Error()
	} else {
		registered.lastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("job %s: %w", name, err)
	}

	return nil
}

func (s *schedulerImpl) Start(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registered, exists := s.jobs[name]
	if !exists {
		return failure.NotFound("job") //nolint:wrapcheck
	}

	if registered.running {
		return nil
	}

	entryID, err := s.cron.AddFunc(registered.spec, s.fire(name))
	if err != nil {
		return fmt.Errorf("failed to resume job %s: %w", name, err)
	}

	registered.entryID = entryID
	registered.running = true

	log.Info().Str("job", name).Msg("Resumed scheduled job")

	return nil
}

func (s *schedulerImpl) Stop(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registered, exists := s.jobs[name]
	if !exists {
		return failure.NotFound("job") //nolint:wrapcheck
	}

	if !registered.running {
		return nil
	}

	s.cron.Remove(registered.entryID)
	registered.running = false

	log.Info().Str("job", name).Msg("Stopped scheduled job")

	return nil
}

func (s *schedulerImpl) StartAll() {
	s.mu.Lock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	s.mu.Unlock()

	for _, name := range names {
		if err := s.Start(name); err != nil {
			log.Error().Err(err).Str("job", name).Msg("Failed to start job")
		}
	}
}

func (s *schedulerImpl) StopAll() {
	s.mu.Lock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	s.mu.Unlock()

	for _, name := range names {
		if err := s.Stop(name); err != nil {
			log.Error().Err(err).Str("job", name).Msg("Failed to stop job")
		}
	}
}

func (s *schedulerImpl) Status() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]JobStatus, 0, len(s.order))

	for _, name := range s.order {
		registered := s.jobs[name]
		statuses = append(statuses, JobStatus{
			Name:      registered.name,
			Schedule:  registered.spec,
			Desc:      registered.description,
			Running:   registered.running,
			LastRun:   registered.lastRun,
			LastError: registered.lastError,
		})
	}

	return statuses
}
