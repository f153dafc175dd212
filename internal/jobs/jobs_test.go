package jobs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	cronMocks "stayhub/infras/cron/mocks"
	bookingMocks "stayhub/internal/domains/booking/mocks"
	"stayhub/internal/domains/booking/service"
	"stayhub/internal/jobs"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.ExpirationSpec = "*/5 * * * *"
	cfg.Scheduler.AutoConfirmSpec = "0 */2 * * *"
	cfg.Scheduler.CompletionSpec = "0 1 * * *"
	cfg.Scheduler.OverdueSpec = "30 1 * * *"

	return cfg
}

func TestRunner_RegisterAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := cronMocks.NewMockScheduler(ctrl)
	maintenance := bookingMocks.NewMockMaintenance(ctrl)

	scheduler.EXPECT().Register(service.JobExpireUnpaid, "*/5 * * * *", gomock.Any(), gomock.Any()).Return(nil)
	scheduler.EXPECT().Register(service.JobAutoConfirmProofs, "0 */2 * * *", gomock.Any(), gomock.Any()).Return(nil)
	scheduler.EXPECT().Register(service.JobCompleteFinishedStays, "0 1 * * *", gomock.Any(), gomock.Any()).Return(nil)
	scheduler.EXPECT().Register(service.JobCancelOverdue, "30 1 * * *", gomock.Any(), gomock.Any()).Return(nil)

	runner := jobs.New(scheduler, maintenance, testConfig())

	assert.NoError(t, runner.RegisterAll())
}

func TestRunner_RegisterAll_SchedulerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := cronMocks.NewMockScheduler(ctrl)
	maintenance := bookingMocks.NewMockMaintenance(ctrl)

	scheduler.EXPECT().Register(service.JobExpireUnpaid, gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	runner := jobs.New(scheduler, maintenance, testConfig())

	assert.Error(t, runner.RegisterAll())
}

func TestRunner_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := cronMocks.NewMockScheduler(ctrl)
	maintenance := bookingMocks.NewMockMaintenance(ctrl)

	maintenance.EXPECT().
		AutoConfirmProofs(gomock.Any()).
		Return(service.JobReport{Job: service.JobAutoConfirmProofs, Count: 3}, nil)

	runner := jobs.New(scheduler, maintenance, testConfig())

	report, err := runner.Run(context.Background(), service.JobAutoConfirmProofs)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Count)
}

func TestRunner_Run_UnknownJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := jobs.New(cronMocks.NewMockScheduler(ctrl), bookingMocks.NewMockMaintenance(ctrl), testConfig())

	_, err := runner.Run(context.Background(), "vacuum-tables")

	assert.Error(t, err)
}

func TestRunner_RunAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := cronMocks.NewMockScheduler(ctrl)
	maintenance := bookingMocks.NewMockMaintenance(ctrl)

	maintenance.EXPECT().ExpireUnpaid(gomock.Any()).Return(service.JobReport{Count: 2}, nil)
	maintenance.EXPECT().AutoConfirmProofs(gomock.Any()).Return(service.JobReport{}, assert.AnError)
	maintenance.EXPECT().CompleteFinishedStays(gomock.Any()).Return(service.JobReport{Count: 1}, nil)
	maintenance.EXPECT().CancelOverdue(gomock.Any()).Return(service.JobReport{}, nil)

	runner := jobs.New(scheduler, maintenance, testConfig())

	results := runner.RunAll(context.Background())

	require.Len(t, results, 4)

	byJob := map[string]jobs.RunResult{}
	for _, result := range results {
		byJob[result.Report.Job] = result
	}

	assert.Equal(t, 2, byJob[service.JobExpireUnpaid].Report.Count)
	assert.Empty(t, byJob[service.JobExpireUnpaid].Error)

	// A failing job is reported but never aborts the others.
	assert.NotEmpty(t, byJob[service.JobAutoConfirmProofs].Error)
	assert.Equal(t, 1, byJob[service.JobCompleteFinishedStays].Report.Count)
	assert.Empty(t, byJob[service.JobCancelOverdue].Error)
}

func TestRunner_StartStopDelegate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := cronMocks.NewMockScheduler(ctrl)
	maintenance := bookingMocks.NewMockMaintenance(ctrl)

	scheduler.EXPECT().Stop(service.JobExpireUnpaid).Return(nil)
	scheduler.EXPECT().Start(service.JobExpireUnpaid).Return(nil)

	runner := jobs.New(scheduler, maintenance, testConfig())

	assert.NoError(t, runner.Stop(service.JobExpireUnpaid))
	assert.NoError(t, runner.Start(service.JobExpireUnpaid))
}
