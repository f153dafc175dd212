package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	notifierMocks "stayhub/infras/notifier/mocks"
	otelMocks "stayhub/infras/otel/mocks"
	"stayhub/internal/domains/booking/mocks"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/service"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
)

type maintenanceFixture struct {
	repo     *mocks.MockBooking
	notifier *notifierMocks.MockNotifier
	svc      service.Maintenance
}

func newMaintenanceFixture(t *testing.T) *maintenanceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Booking.ConfirmGraceHours = 2
	cfg.Booking.CompletionGraceHours = 24

	f := &maintenanceFixture{
		repo:     mocks.NewMockBooking(ctrl),
		notifier: notifierMocks.NewMockNotifier(ctrl),
	}

	f.svc = service.NewMaintenance(f.repo, f.notifier, cfg, stubCache{}, otelMocks.NewOtel())

	return f
}

// statusOf extracts the status equality predicate every maintenance filter starts with.
func statusOf(t *testing.T, filter gDto.FilterGroup) string {
	t.Helper()

	require.NotEmpty(t, filter.Filters)

	first, ok := filter.Filters[0].(gDto.Filter)
	require.True(t, ok)
	require.Equal(t, model.FieldStatus, first.Field)

	status, ok := first.Value.(string)
	require.True(t, ok)

	return status
}

func TestMaintenance_ExpireUnpaid(t *testing.T) {
	f := newMaintenanceFixture(t)

	summaries := []model.Summary{
		{ID: "booking-1", OrderCode: "STAY-20260910-AAAAAA", UserID: "user-1"},
		{ID: "booking-2", OrderCode: "STAY-20260910-BBBBBB", UserID: "user-2"},
	}

	f.repo.EXPECT().
		TransitionWhere(gomock.Any(), gomock.Any(), model.StatusExpired, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ string, mod map[string]any) ([]model.Summary, error) {
			assert.Equal(t, model.StatusWaitingPayment, statusOf(t, filter))
			assert.Equal(t, constant.SystemActor, mod[constant.FieldModifiedBy])

			// Expired bookings keep no deadline.
			require.Contains(t, mod, model.FieldExpiresAt)
			assert.Nil(t, mod[model.FieldExpiresAt])

			return summaries, nil
		})
	f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any()).Times(2)

	report, err := f.svc.ExpireUnpaid(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.JobExpireUnpaid, report.Job)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, summaries, report.Bookings)
}

func TestMaintenance_ExpireUnpaid_NothingDue(t *testing.T) {
	f := newMaintenanceFixture(t)

	f.repo.EXPECT().
		TransitionWhere(gomock.Any(), gomock.Any(), model.StatusExpired, gomock.Any()).
		Return(nil, nil)

	report, err := f.svc.ExpireUnpaid(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.Count)
	assert.Empty(t, report.Bookings)
}

func TestMaintenance_AutoConfirmProofs(t *testing.T) {
	f := newMaintenanceFixture(t)

	f.repo.EXPECT().
		TransitionWhere(gomock.Any(), gomock.Any(), model.StatusProcessing, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ string, mod map[string]any) ([]model.Summary, error) {
			assert.Equal(t, model.StatusWaitingConfirmation, statusOf(t, filter))
			// Auto-confirmation stamps the payment time like a tenant acceptance would.
			assert.Contains(t, mod, model.FieldPaidAt)

			return []model.Summary{{ID: "booking-1"}}, nil
		})
	f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

	report, err := f.svc.AutoConfirmProofs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.JobAutoConfirmProofs, report.Job)
	assert.Equal(t, 1, report.Count)
}

func TestMaintenance_CompleteFinishedStays(t *testing.T) {
	f := newMaintenanceFixture(t)

	f.repo.EXPECT().
		TransitionWhere(gomock.Any(), gomock.Any(), model.StatusCompleted, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ string, _ map[string]any) ([]model.Summary, error) {
			assert.Equal(t, model.StatusProcessing, statusOf(t, filter))

			return []model.Summary{{ID: "booking-1"}}, nil
		})
	f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

	report, err := f.svc.CompleteFinishedStays(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.JobCompleteFinishedStays, report.Job)
	assert.Equal(t, 1, report.Count)
}

func TestMaintenance_CancelOverdue(t *testing.T) {
	f := newMaintenanceFixture(t)

	f.repo.EXPECT().
		TransitionWhere(gomock.Any(), gomock.Any(), model.StatusCanceled, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ string, _ map[string]any) ([]model.Summary, error) {
			require.Len(t, filter.Filters, 3)

			statuses, ok := filter.Filters[0].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, gDto.FilterOperatorIn, statuses.Operator)
			assert.Equal(t, []string{model.StatusWaitingConfirmation, model.StatusProcessing}, statuses.Value)

			// The paid_at guard keeps confirmed stays out of the sweep.
			unpaid, ok := filter.Filters[1].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, model.FieldPaidAt, unpaid.Field)
			assert.Equal(t, gDto.FilterIsNull, unpaid.Operator)

			return []model.Summary{{ID: "booking-1"}}, nil
		})
	f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

	report, err := f.svc.CancelOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.JobCancelOverdue, report.Job)
	assert.Equal(t, 1, report.Count)
}

func TestMaintenance_TransitionFailure(t *testing.T) {
	f := newMaintenanceFixture(t)

	f.repo.EXPECT().
		TransitionWhere(gomock.Any(), gomock.Any(), model.StatusExpired, gomock.Any()).
		Return(nil, assert.AnError)

	_, err := f.svc.ExpireUnpaid(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
