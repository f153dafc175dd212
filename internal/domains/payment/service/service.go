package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"stayhub/config"
	"stayhub/infras/notifier"
	"stayhub/infras/otel"
	bookingModel "stayhub/internal/domains/booking/model"
	bookingRepo "stayhub/internal/domains/booking/repository"
	"stayhub/internal/domains/payment/model"
	"stayhub/internal/domains/payment/model/dto"
	"stayhub/internal/domains/payment/repository"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Gateway transaction statuses, as posted by the webhook.
const (
	gatewayStatusCapture    = "capture"
	gatewayStatusSettlement = "settlement"
	gatewayStatusPending    = "pending"
	gatewayStatusDeny       = "deny"
	gatewayStatusCancel     = "cancel"
	gatewayStatusExpire     = "expire"
	gatewayStatusFailure    = "failure"
)

// Reconciler applies gateway webhook notifications to bookings. Notifications may
// arrive out of order or more than once; applying the same notification twice must
// leave the same state.
type Reconciler interface {
	HandleNotification(ctx context.Context, req dto.GatewayNotification) error
}

type reconcilerImpl struct {
	repo        repository.GatewayPayment
	bookingRepo bookingRepo.Booking
	notifier    notifier.Notifier
	cfg         *config.Config
	otel        otel.Otel
}

func NewReconciler(repo repository.GatewayPayment, bookings bookingRepo.Booking, notify notifier.Notifier, cfg *config.Config, otl otel.Otel) Reconciler {
	return &reconcilerImpl{
		repo:        repo,
		bookingRepo: bookings,
		notifier:    notify,
		cfg:         cfg,
		otel:        otl,
	}
}

// verifySignature checks the webhook signature: hex(sha512(order_id + status_code +
// gross_amount + server_key)), compared in constant time.
func (s *reconcilerImpl) verifySignature(req dto.GatewayNotification) bool {
	payload := req.OrderID + req.StatusCode + req.GrossAmount + s.cfg.Gateway.ServerKey
	sum := sha512.Sum512([]byte(payload))
	expected := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.SignatureKey)) == 1
}

func (s *reconcilerImpl) HandleNotification(ctx context.Context, req dto.GatewayNotification) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.verifySignature(req) {
		log.Warn().Str("order_id", req.OrderID).Msg("rejected gateway notification with invalid signature")

		return failure.Unauthorized("invalid notification signature") //nolint:wrapcheck
	}

	booking, err := s.bookingRepo.GetByOrderCode(ctx, req.OrderID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking for notification")

		return fmt.Errorf("failed to load booking for notification: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound(bookingModel.EntityName) //nolint:wrapcheck
	}

	paymentStatus, bookingStatus, known := mapGatewayStatus(req.TransactionStatus)
	if !known {
		log.Warn().
			Str("order_id", req.OrderID).
			Str("transaction_status", req.TransactionStatus).
			Msg("ignoring notification with unknown transaction status")

		return nil
	}

	payment, err := s.repo.GetByOrderCode(ctx, req.OrderID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load gateway payment")

		return fmt.Errorf("failed to load gateway payment: %w", err)
	}

	now := timezone.Now()
	paymentIsNew := payment.ID == ""

	if paymentIsNew {
		payment = model.GatewayPayment{
			ID:          uuid.NewString(),
			BookingID:   booking.ID,
			OrderCode:   req.OrderID,
			GrossAmount: req.GrossAmount,
		}
		payment.CreatedAt = now
		payment.CreatedBy = constant.SystemActor
	}

	payment.TransactionID = req.TransactionID
	payment.Status = paymentStatus
	payment.RawStatus = req.TransactionStatus
	payment.ModifiedAt = now
	payment.ModifiedBy = constant.SystemActor

	if paymentStatus == model.StatusCompleted {
		payment.SettledAt = &now
	}

	bookingMod := s.bookingTransition(booking, bookingStatus, now)

	if err = s.repo.Settle(ctx, payment, paymentIsNew, bookingMod); err != nil {
		log.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to settle notification")

		return fmt.Errorf("failed to settle notification: %w", err)
	}

	if paymentStatus == model.StatusCompleted && len(bookingMod) > 0 {
		s.notifier.NotifyBestEffort(ctx, notifier.Event{
			Type:      notifier.EventPaymentSettled,
			BookingID: booking.ID,
			OrderCode: booking.OrderCode,
			UserID:    booking.UserID,
		})
	}

	return nil
}

// mapGatewayStatus translates the gateway vocabulary into the payment record status
// and the booking status a successful reconciliation should land on.
func mapGatewayStatus(transactionStatus string) (paymentStatus, bookingStatus string, known bool) {
	switch transactionStatus {
	case gatewayStatusCapture, gatewayStatusSettlement:
		return model.StatusCompleted, bookingModel.StatusProcessing, true
	case gatewayStatusPending:
		return model.StatusPending, "", true
	case gatewayStatusDeny, gatewayStatusCancel, gatewayStatusExpire, gatewayStatusFailure:
		return model.StatusCanceled, bookingModel.StatusCanceled, true
	default:
		return "", "", false
	}
}

// bookingTransition returns the booking column updates for the target status, or an
// empty map when the booking must not move (terminal state, pending notification, or
// already where the notification would put it).
func (s *reconcilerImpl) bookingTransition(booking bookingModel.Booking, targetStatus string, now time.Time) map[string]any {
	if targetStatus == "" || booking.Status == targetStatus || bookingModel.IsTerminal(booking.Status) {
		return map[string]any{}
	}

	// Leaving WAITING_PAYMENT retires the payment deadline whichever way it goes.
	mod := map[string]any{
		bookingModel.FieldStatus:    targetStatus,
		bookingModel.FieldExpiresAt: nil,
		constant.FieldModifiedAt:    now,
		constant.FieldModifiedBy:    constant.SystemActor,
	}

	if targetStatus == bookingModel.StatusProcessing {
		mod[bookingModel.FieldPaidAt] = now
	}

	return mod
}
