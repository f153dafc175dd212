package jobs

//go:generate go run go.uber.org/mock/mockgen -source=./jobs.go -destination=./mocks/jobs_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stayhub/config"
	"stayhub/infras/cron"
	"stayhub/internal/domains/booking/service"
	"sync"

	"github.com/rs/zerolog/log"
)

// Runner owns the maintenance schedule: it registers each lifecycle sweep with the
// scheduler and exposes manual control for the jobs surface.
type Runner interface {
	RegisterAll() error
	Start(name string) error
	Stop(name string) error
	Run(ctx context.Context, name string) (service.JobReport, error)
	RunAll(ctx context.Context) []RunResult
	Status() []cron.JobStatus
}

// RunResult is the outcome of one job inside a run-all sweep. A failing job never
// aborts the others.
type RunResult struct {
	Report service.JobReport `json:"report"`
	Error  string            `json:"error,omitempty"`
}

type runnerImpl struct {
	scheduler   cron.Scheduler
	maintenance service.Maintenance
	cfg         *config.Config
}

func New(scheduler cron.Scheduler, maintenance service.Maintenance, cfg *config.Config) Runner {
	return &runnerImpl{
		scheduler:   scheduler,
		maintenance: maintenance,
		cfg:         cfg,
	}
}

type jobSpec struct {
	name        string
	spec        string
	description string
	fn          func(ctx context.Context) (service.JobReport, error)
}

func (r *runnerImpl) specs() []jobSpec {
	return []jobSpec{
		{
			name:        service.JobExpireUnpaid,
			spec:        r.cfg.Scheduler.ExpirationSpec,
			description: "expire bookings whose payment deadline passed",
			fn:          r.maintenance.ExpireUnpaid,
		},
		{
			name:        service.JobAutoConfirmProofs,
			spec:        r.cfg.Scheduler.AutoConfirmSpec,
			description: "accept payment proofs left unreviewed past the grace period",
			fn:          r.maintenance.AutoConfirmProofs,
		},
		{
			name:        service.JobCompleteFinishedStays,
			spec:        r.cfg.Scheduler.CompletionSpec,
			description: "complete processed bookings whose stay has ended",
			fn:          r.maintenance.CompleteFinishedStays,
		},
		{
			name:        service.JobCancelOverdue,
			spec:        r.cfg.Scheduler.OverdueSpec,
			description: "cancel unreviewed bookings whose check-in passed",
			fn:          r.maintenance.CancelOverdue,
		},
	}
}

func (r *runnerImpl) RegisterAll() error {
	for _, spec := range r.specs() {
		fn := spec.fn

		err := r.scheduler.Register(spec.name, spec.spec, spec.description, func(ctx context.Context) error {
			_, runErr := fn(ctx)

			return runErr
		})
		if err != nil {
			return fmt.Errorf("failed to register maintenance job: %w", err)
		}
	}

	return nil
}

func (r *runnerImpl) Start(name string) error {
	return r.scheduler.Start(name) //nolint:wrapcheck
}

func (r *runnerImpl) Stop(name string) error {
	return r.scheduler.Stop(name) //nolint:wrapcheck
}

// Run executes a single job immediately and returns its report.
func (r *runnerImpl) Run(ctx context.Context, name string) (service.JobReport, error) {
	for _, spec := range r.specs() {
		if spec.name == name {
			return spec.fn(ctx)
		}
	}

	return service.JobReport{}, fmt.Errorf("unknown maintenance job %s", name)
}

// RunAll fires every maintenance job concurrently and waits for all of them. Jobs
// touch disjoint status sets, so they can run in parallel safely.
func (r *runnerImpl) RunAll(ctx context.Context) []RunResult {
	specs := r.specs()
	results := make([]RunResult, len(specs))

	var wg sync.WaitGroup

	for idx, spec := range specs {
		wg.Add(1)

		go func(idx int, spec jobSpec) {
			defer wg.Done()

			report, err := spec.fn(ctx)
			results[idx] = RunResult{Report: report}
			results[idx].Report.Job = spec.name

			if err != nil {
				log.Error().Err(err).Str("job", spec.name).Msg("maintenance job failed during run-all")
				results[idx].Error = err.Error()
			}
		}(idx, spec)
	}

	wg.Wait()

	return results
}

func (r *runnerImpl) Status() []cron.JobStatus {
	return r.scheduler.Status()
}
