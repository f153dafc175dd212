package service

//go:generate go run go.uber.org/mock/mockgen -source=./maintenance.go -destination=../mocks/maintenance_mock.go -package=mocks

import (
	"context"
	"stayhub/config"
	"stayhub/infras/notifier"
	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	JobExpireUnpaid          = "expire-unpaid"
	JobAutoConfirmProofs     = "auto-confirm-proofs"
	JobCompleteFinishedStays = "complete-finished-stays"
	JobCancelOverdue         = "cancel-overdue"
)

// JobReport summarizes a single maintenance run.
type JobReport struct {
	Job      string          `json:"job"`
	Count    int             `json:"count"`
	Bookings []model.Summary `json:"bookings,omitempty"`
}

// Maintenance holds the scheduled lifecycle sweeps. Every job is idempotent: it
// selects by current status plus a deadline predicate, so a second run over the same
// data matches nothing.
type Maintenance interface {
	ExpireUnpaid(ctx context.Context) (JobReport, error)
	AutoConfirmProofs(ctx context.Context) (JobReport, error)
	CompleteFinishedStays(ctx context.Context) (JobReport, error)
	CancelOverdue(ctx context.Context) (JobReport, error)
}

type maintenanceImpl struct {
	repo     repository.Booking
	notifier notifier.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func NewMaintenance(repo repository.Booking, notify notifier.Notifier, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Maintenance {
	return &maintenanceImpl{
		repo:     repo,
		notifier: notify,
		cfg:      cfg,
		cache:    redisCache,
		otel:     otl,
	}
}

// ExpireUnpaid moves bookings whose payment deadline has passed to EXPIRED. It is
// the safety net behind the delayed expiration tasks.
func (m *maintenanceImpl) ExpireUnpaid(ctx context.Context) (report JobReport, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".ExpireUnpaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			statusFilter(model.StatusWaitingPayment),
			gDto.Filter{
				Field:    model.FieldExpiresAt,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "deadline",
				Field:    model.FieldExpiresAt,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
				Table:    model.TableName,
			},
		},
	}

	// The deadline only means something while the booking waits for payment.
	extra := map[string]any{model.FieldExpiresAt: nil}

	return m.transition(ctx, JobExpireUnpaid, filter, model.StatusExpired, extra, notifier.EventBookingExpired, now)
}

// AutoConfirmProofs accepts payment proofs that tenants left unreviewed beyond the
// grace period. The booking moves to PROCESSING as if the tenant had accepted.
func (m *maintenanceImpl) AutoConfirmProofs(ctx context.Context) (report JobReport, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".AutoConfirmProofs")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	cutoff := now.Add(-time.Duration(m.cfg.Booking.ConfirmGraceHours) * time.Hour)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			statusFilter(model.StatusWaitingConfirmation),
			gDto.Filter{
				ArgName:  "cutoff",
				Field:    constant.FieldModifiedAt,
				Operator: gDto.FilterOperatorLessEq,
				Value:    cutoff,
				Table:    model.TableName,
			},
		},
	}

	extra := map[string]any{model.FieldPaidAt: now}

	return m.transition(ctx, JobAutoConfirmProofs, filter, model.StatusProcessing, extra, notifier.EventBookingConfirmed, now)
}

// CompleteFinishedStays closes PROCESSING bookings once the stay is over and the
// completion grace period has elapsed past checkout.
func (m *maintenanceImpl) CompleteFinishedStays(ctx context.Context) (report JobReport, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".CompleteFinishedStays")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	cutoff := now.Add(-time.Duration(m.cfg.Booking.CompletionGraceHours) * time.Hour)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			statusFilter(model.StatusProcessing),
			gDto.Filter{
				ArgName:  "cutoff",
				Field:    model.FieldCheckOutDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    cutoff,
				Table:    model.TableName,
			},
		},
	}

	return m.transition(ctx, JobCompleteFinishedStays, filter, model.StatusCompleted, nil, notifier.EventBookingCompleted, now)
}

// CancelOverdue cancels bookings that reached check-in without ever being paid.
// That covers WAITING_CONFIRMATION rows with an unreviewed proof, and PROCESSING
// rows guarded by paid_at IS NULL, which every confirmation path stamps.
func (m *maintenanceImpl) CancelOverdue(ctx context.Context) (report JobReport, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".CancelOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusWaitingConfirmation, model.StatusProcessing},
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPaidAt,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "cutoff",
				Field:    model.FieldCheckInDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
				Table:    model.TableName,
			},
		},
	}

	return m.transition(ctx, JobCancelOverdue, filter, model.StatusCanceled, nil, notifier.EventBookingCanceled, now)
}

func statusFilter(status string) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    status,
		Table:    model.TableName,
	}
}

func (m *maintenanceImpl) transition(ctx context.Context, job string, filter gDto.FilterGroup, newStatus string, extra map[string]any, eventType string, now time.Time) (JobReport, error) {
	report := JobReport{Job: job}

	mod := map[string]any{
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.SystemActor,
	}
	for col, val := range extra {
		mod[col] = val
	}

	summaries, err := m.repo.TransitionWhere(ctx, filter, newStatus, mod)
	if err != nil {
		log.Error().Err(err).Str("job", job).Msg("maintenance job failed")

		return report, failure.Maintenance(job, err) //nolint:wrapcheck
	}

	report.Count = len(summaries)
	report.Bookings = summaries

	for _, summary := range summaries {
		log.Info().
			Str("job", job).
			Str("booking_id", summary.ID).
			Str("order_code", summary.OrderCode).
			Str("new_status", newStatus).
			Msg("booking transitioned by maintenance job")

		m.notifier.NotifyBestEffort(ctx, notifier.Event{
			Type:      eventType,
			BookingID: summary.ID,
			OrderCode: summary.OrderCode,
			UserID:    summary.UserID,
		})
	}

	if len(summaries) > 0 {
		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, m.cache, cacheGetBooking)
			shared.InvalidateCaches(c, m.cache, cacheGetAllBooking)
		}()
	}

	log.Info().Str("job", job).Int("count", report.Count).Msg("maintenance job finished")

	return report, nil
}
