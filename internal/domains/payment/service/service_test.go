package service_test

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	notifierMocks "stayhub/infras/notifier/mocks"
	otelMocks "stayhub/infras/otel/mocks"
	bookingMocks "stayhub/internal/domains/booking/mocks"
	bookingModel "stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/payment/mocks"
	"stayhub/internal/domains/payment/model"
	"stayhub/internal/domains/payment/model/dto"
	"stayhub/internal/domains/payment/service"
	"stayhub/shared/failure"
)

const serverKey = "test-server-key"

type fixture struct {
	repo        *mocks.MockGatewayPayment
	bookingRepo *bookingMocks.MockBooking
	notifier    *notifierMocks.MockNotifier
	svc         service.Reconciler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Gateway.ServerKey = serverKey

	f := &fixture{
		repo:        mocks.NewMockGatewayPayment(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		notifier:    notifierMocks.NewMockNotifier(ctrl),
	}

	f.svc = service.NewReconciler(f.repo, f.bookingRepo, f.notifier, cfg, otelMocks.NewOtel())

	return f
}

func signedNotification(orderID, transactionStatus string) dto.GatewayNotification {
	req := dto.GatewayNotification{
		OrderID:           orderID,
		TransactionID:     "txn-1",
		TransactionStatus: transactionStatus,
		StatusCode:        "200",
		GrossAmount:       "300000.00",
	}

	sum := sha512.Sum512([]byte(req.OrderID + req.StatusCode + req.GrossAmount + serverKey))
	req.SignatureKey = hex.EncodeToString(sum[:])

	return req
}

func waitingPaymentBooking() bookingModel.Booking {
	expiresAt := time.Now().Add(30 * time.Minute)

	return bookingModel.Booking{
		ID:            "booking-1",
		OrderCode:     "STAY-20260910-AB12CD",
		UserID:        "user-1",
		TenantID:      "tenant-1",
		Status:        bookingModel.StatusWaitingPayment,
		PaymentMethod: bookingModel.PaymentMethodGateway,
		ExpiresAt:     &expiresAt,
	}
}

func TestReconciler_HandleNotification_InvalidSignature(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-20260910-AB12CD", "settlement")
	req.SignatureKey = "forged"

	err := f.svc.HandleNotification(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestReconciler_HandleNotification_UnknownBooking(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-UNKNOWN", "settlement")

	f.bookingRepo.EXPECT().GetByOrderCode(gomock.Any(), "STAY-UNKNOWN").Return(bookingModel.Booking{}, nil)

	err := f.svc.HandleNotification(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestReconciler_HandleNotification_UnknownStatusIgnored(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-20260910-AB12CD", "refund")

	f.bookingRepo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(waitingPaymentBooking(), nil)

	err := f.svc.HandleNotification(context.Background(), req)

	assert.NoError(t, err)
}

func TestReconciler_HandleNotification_Settlement(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-20260910-AB12CD", "settlement")

	f.bookingRepo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(waitingPaymentBooking(), nil)
	f.repo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(model.GatewayPayment{}, nil)

	f.repo.EXPECT().
		Settle(gomock.Any(), gomock.Any(), true, gomock.Any()).
		DoAndReturn(func(_ context.Context, payment model.GatewayPayment, _ bool, bookingMod map[string]any) error {
			assert.Equal(t, model.StatusCompleted, payment.Status)
			assert.Equal(t, "settlement", payment.RawStatus)
			assert.Equal(t, "booking-1", payment.BookingID)
			require.NotNil(t, payment.SettledAt)

			assert.Equal(t, bookingModel.StatusProcessing, bookingMod[bookingModel.FieldStatus])
			assert.Contains(t, bookingMod, bookingModel.FieldPaidAt)
			assert.Nil(t, bookingMod[bookingModel.FieldExpiresAt])

			return nil
		})
	f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

	err := f.svc.HandleNotification(context.Background(), req)

	assert.NoError(t, err)
}

func TestReconciler_HandleNotification_Pending(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-20260910-AB12CD", "pending")

	f.bookingRepo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(waitingPaymentBooking(), nil)
	f.repo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(model.GatewayPayment{}, nil)

	f.repo.EXPECT().
		Settle(gomock.Any(), gomock.Any(), true, gomock.Any()).
		DoAndReturn(func(_ context.Context, payment model.GatewayPayment, _ bool, bookingMod map[string]any) error {
			assert.Equal(t, model.StatusPending, payment.Status)
			assert.Nil(t, payment.SettledAt)
			// A pending notification records the payment but never moves the booking.
			assert.Empty(t, bookingMod)

			return nil
		})

	err := f.svc.HandleNotification(context.Background(), req)

	assert.NoError(t, err)
}

func TestReconciler_HandleNotification_Expire(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-20260910-AB12CD", "expire")

	f.bookingRepo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(waitingPaymentBooking(), nil)
	f.repo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(model.GatewayPayment{}, nil)

	f.repo.EXPECT().
		Settle(gomock.Any(), gomock.Any(), true, gomock.Any()).
		DoAndReturn(func(_ context.Context, payment model.GatewayPayment, _ bool, bookingMod map[string]any) error {
			assert.Equal(t, model.StatusCanceled, payment.Status)
			assert.Equal(t, bookingModel.StatusCanceled, bookingMod[bookingModel.FieldStatus])

			// Cancellation retires the payment deadline along with the booking.
			require.Contains(t, bookingMod, bookingModel.FieldExpiresAt)
			assert.Nil(t, bookingMod[bookingModel.FieldExpiresAt])

			return nil
		})

	err := f.svc.HandleNotification(context.Background(), req)

	assert.NoError(t, err)
}

func TestReconciler_HandleNotification_Replay(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-20260910-AB12CD", "settlement")

	booking := waitingPaymentBooking()
	booking.Status = bookingModel.StatusProcessing

	existing := model.GatewayPayment{
		ID:        "payment-1",
		BookingID: "booking-1",
		OrderCode: req.OrderID,
		Status:    model.StatusCompleted,
	}

	f.bookingRepo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(booking, nil)
	f.repo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(existing, nil)

	// The booking already landed on PROCESSING, so the replay updates the payment
	// record in place and leaves the booking untouched.
	f.repo.EXPECT().
		Settle(gomock.Any(), gomock.Any(), false, gomock.Any()).
		DoAndReturn(func(_ context.Context, payment model.GatewayPayment, _ bool, bookingMod map[string]any) error {
			assert.Equal(t, "payment-1", payment.ID)
			assert.Empty(t, bookingMod)

			return nil
		})

	err := f.svc.HandleNotification(context.Background(), req)

	assert.NoError(t, err)
}

func TestReconciler_HandleNotification_TerminalBookingNeverMoves(t *testing.T) {
	f := newFixture(t)

	req := signedNotification("STAY-20260910-AB12CD", "settlement")

	booking := waitingPaymentBooking()
	booking.Status = bookingModel.StatusExpired

	f.bookingRepo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(booking, nil)
	f.repo.EXPECT().GetByOrderCode(gomock.Any(), req.OrderID).Return(model.GatewayPayment{}, nil)

	f.repo.EXPECT().
		Settle(gomock.Any(), gomock.Any(), true, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.GatewayPayment, _ bool, bookingMod map[string]any) error {
			assert.Empty(t, bookingMod)

			return nil
		})

	err := f.svc.HandleNotification(context.Background(), req)

	assert.NoError(t, err)
}
