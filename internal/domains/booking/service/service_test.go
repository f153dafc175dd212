package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayhub/config"
	notifierMocks "stayhub/infras/notifier/mocks"
	otelMocks "stayhub/infras/otel/mocks"
	queueMocks "stayhub/infras/queue/mocks"
	availMocks "stayhub/internal/domains/availability/mocks"
	"stayhub/internal/domains/booking/mocks"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	propertyMocks "stayhub/internal/domains/property/mocks"
	propertyModel "stayhub/internal/domains/property/model"
	"stayhub/shared/cache"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
)

// stubCache always misses and swallows writes, so the async cache goroutines in the
// service cannot race the mock controller.
type stubCache struct{}

func (stubCache) Save(context.Context, string, any, int) error { return nil }
func (stubCache) Get(context.Context, string, any) error       { return cache.Nil }
func (stubCache) Delete(context.Context, string) error         { return nil }
func (stubCache) Clear(context.Context, string) error          { return nil }

type fixture struct {
	repo       *mocks.MockBooking
	proofRepo  *mocks.MockPaymentProof
	roomRepo   *propertyMocks.MockRoom
	propRepo   *propertyMocks.MockProperty
	engine     *availMocks.MockEngine
	dispatcher *queueMocks.MockDispatcher
	notifier   *notifierMocks.MockNotifier
	cfg        *config.Config
	svc        service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:       mocks.NewMockBooking(ctrl),
		proofRepo:  mocks.NewMockPaymentProof(ctrl),
		roomRepo:   propertyMocks.NewMockRoom(ctrl),
		propRepo:   propertyMocks.NewMockProperty(ctrl),
		engine:     availMocks.NewMockEngine(ctrl),
		dispatcher: queueMocks.NewMockDispatcher(ctrl),
		notifier:   notifierMocks.NewMockNotifier(ctrl),
		cfg:        &config.Config{},
	}

	f.cfg.Booking.PaymentWindowMinutes = 60
	f.cfg.Booking.ConfirmGraceHours = 2
	f.cfg.Booking.CompletionGraceHours = 24
	f.cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.proofRepo, f.roomRepo, f.propRepo, f.engine, f.dispatcher, f.notifier, f.cfg, stubCache{}, otelMocks.NewOtel())

	return f
}

func testRoom() propertyModel.Room {
	return propertyModel.Room{
		ID:         "room-1",
		PropertyID: "property-1",
		Name:       "Deluxe",
		Capacity:   2,
		Qty:        1,
		BasePrice:  100000,
		Active:     true,
	}
}

func testProperty() propertyModel.Property {
	return propertyModel.Property{
		ID:       "property-1",
		TenantID: "tenant-1",
		Name:     "Seaside Villa",
		Active:   true,
	}
}

func waitingPaymentBooking() model.Booking {
	expiresAt := timezone.Now().Add(30 * time.Minute)

	return model.Booking{
		ID:            "booking-1",
		OrderCode:     "STAY-20260910-AB12CD",
		UserID:        "user-1",
		TenantID:      "tenant-1",
		PropertyID:    "property-1",
		RoomID:        "room-1",
		CheckInDate:   time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC),
		Nights:        3,
		Qty:           1,
		PricePerNight: 100000,
		TotalAmount:   300000,
		Status:        model.StatusWaitingPayment,
		PaymentMethod: model.PaymentMethodManualTransfer,
		ExpiresAt:     &expiresAt,
	}
}

func stayDates(daysAhead, nights int) (string, string) {
	checkIn := timezone.Now().AddDate(0, 0, daysAhead)

	return checkIn.Format("2006-01-02"), checkIn.AddDate(0, 0, nights).Format("2006-01-02")
}

func TestBookingService_Create(t *testing.T) {
	checkIn, checkOut := stayDates(14, 3)

	req := dto.CreateBookingRequest{
		RoomID:        "room-1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        2,
		Qty:           1,
		PaymentMethod: model.PaymentMethodManualTransfer,
	}

	t.Run("successful booking", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.propRepo.EXPECT().GetByID(gomock.Any(), "property-1").Return(testProperty(), nil)
		f.engine.EXPECT().IsRoomAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(true, nil)
		f.engine.EXPECT().CalculateStayTotal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(300000.0, nil)

		f.repo.EXPECT().
			InsertWithAvailability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusWaitingPayment, booking.Status)
				assert.Equal(t, "tenant-1", booking.TenantID)
				assert.Equal(t, 3, booking.Nights)
				assert.InDelta(t, 300000, booking.TotalAmount, 0.0001)
				assert.InDelta(t, 100000, booking.PricePerNight, 0.0001)
				require.NotNil(t, booking.ExpiresAt)
				assert.NotEmpty(t, booking.OrderCode)

				return nil
			})

		f.dispatcher.EXPECT().EnqueueExpiration(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

		res, err := f.svc.Create(context.Background(), "user-1", req)

		require.NoError(t, err)
		assert.Equal(t, model.StatusWaitingPayment, res.Status)
		assert.Equal(t, "user-1", res.UserID)
	})

	t.Run("room not found", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(propertyModel.Room{}, nil)

		_, err := f.svc.Create(context.Background(), "user-1", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("inactive property", func(t *testing.T) {
		f := newFixture(t)

		inactive := testProperty()
		inactive.Active = false

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.propRepo.EXPECT().GetByID(gomock.Any(), "property-1").Return(inactive, nil)

		_, err := f.svc.Create(context.Background(), "user-1", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("room not available", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.propRepo.EXPECT().GetByID(gomock.Any(), "property-1").Return(testProperty(), nil)
		f.engine.EXPECT().IsRoomAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(false, nil)

		_, err := f.svc.Create(context.Background(), "user-1", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("enqueue failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.propRepo.EXPECT().GetByID(gomock.Any(), "property-1").Return(testProperty(), nil)
		f.engine.EXPECT().IsRoomAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(true, nil)
		f.engine.EXPECT().CalculateStayTotal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(300000.0, nil)
		f.repo.EXPECT().InsertWithAvailability(gomock.Any(), gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().EnqueueExpiration(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

		_, err := f.svc.Create(context.Background(), "user-1", req)

		assert.NoError(t, err)
	})

	t.Run("invalid stay range", func(t *testing.T) {
		f := newFixture(t)

		invalid := req
		invalid.CheckOut = invalid.CheckIn

		_, err := f.svc.Create(context.Background(), "user-1", invalid)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("check-in in the past", func(t *testing.T) {
		f := newFixture(t)

		stale := req
		stale.CheckIn = "2020-01-01"
		stale.CheckOut = "2020-01-04"

		_, err := f.svc.Create(context.Background(), "user-1", stale)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("cancel while waiting payment", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingPaymentBooking(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.Equal(t, model.StatusCanceled, mod[model.FieldStatus])
				assert.Nil(t, mod[model.FieldExpiresAt])

				return nil
			})
		f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

		res, err := f.svc.Cancel(context.Background(), "booking-1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCanceled, res.Status)
		assert.Empty(t, res.ExpiresAt)
	})

	t.Run("cancel by non-owner", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingPaymentBooking(), nil)

		_, err := f.svc.Cancel(context.Background(), "booking-1", "someone-else")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("cancel after payment is confirmed", func(t *testing.T) {
		f := newFixture(t)

		booking := waitingPaymentBooking()
		booking.Status = model.StatusProcessing

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(booking, nil)

		_, err := f.svc.Cancel(context.Background(), "booking-1", "user-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(model.Booking{}, nil)

		_, err := f.svc.Cancel(context.Background(), "missing", "user-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_SubmitPaymentProof(t *testing.T) {
	req := dto.SubmitPaymentProofRequest{ImageURL: "https://files.example.com/proof.png"}

	t.Run("proof moves booking to waiting confirmation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingPaymentBooking(), nil)
		f.proofRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, proof model.PaymentProof) error {
				assert.Equal(t, "booking-1", proof.BookingID)
				assert.Equal(t, req.ImageURL, proof.ImageURL)

				return nil
			})
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.Equal(t, model.StatusWaitingConfirmation, mod[model.FieldStatus])
				assert.Nil(t, mod[model.FieldExpiresAt])

				return nil
			})

		res, err := f.svc.SubmitPaymentProof(context.Background(), "booking-1", "user-1", req)

		require.NoError(t, err)
		assert.Equal(t, model.StatusWaitingConfirmation, res.Status)
	})

	t.Run("gateway bookings take no proof", func(t *testing.T) {
		f := newFixture(t)

		booking := waitingPaymentBooking()
		booking.PaymentMethod = model.PaymentMethodGateway

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(booking, nil)

		_, err := f.svc.SubmitPaymentProof(context.Background(), "booking-1", "user-1", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("proof already submitted", func(t *testing.T) {
		f := newFixture(t)

		booking := waitingPaymentBooking()
		booking.Status = model.StatusWaitingConfirmation

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(booking, nil)

		_, err := f.svc.SubmitPaymentProof(context.Background(), "booking-1", "user-1", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestBookingService_ReviewPaymentProof(t *testing.T) {
	proof := model.PaymentProof{
		ID:        "proof-1",
		BookingID: "booking-1",
		ImageURL:  "https://files.example.com/proof.png",
	}

	waitingReview := func() model.Booking {
		booking := waitingPaymentBooking()
		booking.Status = model.StatusWaitingConfirmation
		booking.ExpiresAt = nil

		return booking
	}

	t.Run("accept moves booking to processing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingReview(), nil)
		f.proofRepo.EXPECT().GetByBookingID(gomock.Any(), "booking-1").Return(proof, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.Equal(t, model.StatusProcessing, mod[model.FieldStatus])
				assert.NotNil(t, mod[model.FieldPaidAt])

				return nil
			})
		f.proofRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.NotNil(t, mod[model.ProofFieldAcceptedAt])

				return nil
			})
		f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

		res, err := f.svc.ReviewPaymentProof(context.Background(), "booking-1", "tenant-1", dto.ReviewPaymentProofRequest{Action: dto.ReviewActionAccept})

		require.NoError(t, err)
		assert.Equal(t, model.StatusProcessing, res.Status)
		assert.NotEmpty(t, res.PaidAt)
	})

	t.Run("reject restarts the payment window", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingReview(), nil)
		f.proofRepo.EXPECT().GetByBookingID(gomock.Any(), "booking-1").Return(proof, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.Equal(t, model.StatusWaitingPayment, mod[model.FieldStatus])

				expiresAt, ok := mod[model.FieldExpiresAt].(time.Time)
				require.True(t, ok)
				assert.True(t, expiresAt.After(timezone.Now()))

				return nil
			})
		f.proofRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ any) error {
				assert.NotNil(t, mod[model.ProofFieldRejectedAt])

				return nil
			})
		f.dispatcher.EXPECT().EnqueueExpiration(gomock.Any(), "booking-1", gomock.Any()).Return(nil)
		f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

		res, err := f.svc.ReviewPaymentProof(context.Background(), "booking-1", "tenant-1", dto.ReviewPaymentProofRequest{Action: dto.ReviewActionReject})

		require.NoError(t, err)
		assert.Equal(t, model.StatusWaitingPayment, res.Status)
		assert.NotEmpty(t, res.ExpiresAt)
	})

	t.Run("review by another tenant", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingReview(), nil)

		_, err := f.svc.ReviewPaymentProof(context.Background(), "booking-1", "tenant-2", dto.ReviewPaymentProofRequest{Action: dto.ReviewActionAccept})

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("review before proof exists", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingReview(), nil)
		f.proofRepo.EXPECT().GetByBookingID(gomock.Any(), "booking-1").Return(model.PaymentProof{}, nil)

		_, err := f.svc.ReviewPaymentProof(context.Background(), "booking-1", "tenant-1", dto.ReviewPaymentProofRequest{Action: dto.ReviewActionAccept})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("review outside waiting confirmation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingPaymentBooking(), nil)

		_, err := f.svc.ReviewPaymentProof(context.Background(), "booking-1", "tenant-1", dto.ReviewPaymentProofRequest{Action: dto.ReviewActionAccept})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})
}

func TestBookingService_ExpireIfUnpaid(t *testing.T) {
	t.Run("expires an overdue booking", func(t *testing.T) {
		f := newFixture(t)

		booking := waitingPaymentBooking()
		overdue := timezone.Now().Add(-time.Minute)
		booking.ExpiresAt = &overdue

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(booking, nil)
		f.repo.EXPECT().
			TransitionWhere(gomock.Any(), gomock.Any(), model.StatusExpired, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ string, extra map[string]any) ([]model.Summary, error) {
				require.Contains(t, extra, model.FieldExpiresAt)
				assert.Nil(t, extra[model.FieldExpiresAt])

				return []model.Summary{{ID: "booking-1", OrderCode: booking.OrderCode, UserID: booking.UserID}}, nil
			})
		f.notifier.EXPECT().NotifyBestEffort(gomock.Any(), gomock.Any())

		err := f.svc.ExpireIfUnpaid(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("noop when the deadline moved", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(waitingPaymentBooking(), nil)

		err := f.svc.ExpireIfUnpaid(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("noop when the booking left waiting payment", func(t *testing.T) {
		f := newFixture(t)

		booking := waitingPaymentBooking()
		booking.Status = model.StatusProcessing

		f.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(booking, nil)

		err := f.svc.ExpireIfUnpaid(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("noop when the booking is gone", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(model.Booking{}, nil)

		err := f.svc.ExpireIfUnpaid(context.Background(), "missing")

		assert.NoError(t, err)
	})
}

func TestBookingService_CheckAvailability(t *testing.T) {
	checkIn, checkOut := stayDates(14, 3)

	req := dto.CheckAvailabilityRequest{
		RoomID:   "room-1",
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   2,
	}

	t.Run("available room returns the stay total", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.engine.EXPECT().IsRoomAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(true, nil)
		f.engine.EXPECT().CalculateStayTotal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 1).Return(300000.0, nil)

		res, err := f.svc.CheckAvailability(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.InDelta(t, 300000, res.TotalAmount, 0.0001)
	})

	t.Run("unavailable room returns no price", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.engine.EXPECT().IsRoomAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(false, nil)

		res, err := f.svc.CheckAvailability(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Zero(t, res.TotalAmount)
	})
}

func TestBookingService_VerifyTenantPropertyAccess(t *testing.T) {
	t.Run("tenant owns the property", func(t *testing.T) {
		f := newFixture(t)

		f.propRepo.EXPECT().OwnedByTenant(gomock.Any(), "property-1", "tenant-1").Return(true, nil)

		assert.NoError(t, f.svc.VerifyTenantPropertyAccess(context.Background(), "tenant-1", "property-1"))
	})

	t.Run("property belongs to another tenant", func(t *testing.T) {
		f := newFixture(t)

		f.propRepo.EXPECT().OwnedByTenant(gomock.Any(), "property-1", "tenant-2").Return(false, nil)

		err := f.svc.VerifyTenantPropertyAccess(context.Background(), "tenant-2", "property-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("empty tenant is rejected without a lookup", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.VerifyTenantPropertyAccess(context.Background(), "", "property-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestBookingService_BlockRoomDates(t *testing.T) {
	req := dto.RoomDatesRequest{Dates: []string{"2026-12-24", "2026-12-25"}}

	t.Run("blocks dates on an owned room", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.propRepo.EXPECT().OwnedByTenant(gomock.Any(), "property-1", "tenant-1").Return(true, nil)
		f.engine.EXPECT().
			BlockDates(gomock.Any(), "room-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dates []time.Time) error {
				require.Len(t, dates, 2)
				assert.Equal(t, "2026-12-24", dates[0].Format("2006-01-02"))
				assert.Equal(t, "2026-12-25", dates[1].Format("2006-01-02"))

				return nil
			})

		assert.NoError(t, f.svc.BlockRoomDates(context.Background(), "tenant-1", "room-1", req))
	})

	t.Run("room not found", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(propertyModel.Room{}, nil)

		err := f.svc.BlockRoomDates(context.Background(), "tenant-1", "missing", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("room on another tenant's property", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
		f.propRepo.EXPECT().OwnedByTenant(gomock.Any(), "property-1", "tenant-2").Return(false, nil)

		err := f.svc.BlockRoomDates(context.Background(), "tenant-2", "room-1", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newFixture(t)

		bad := dto.RoomDatesRequest{Dates: []string{"24/12/2026"}}

		err := f.svc.BlockRoomDates(context.Background(), "tenant-1", "room-1", bad)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_UnblockRoomDates(t *testing.T) {
	f := newFixture(t)

	req := dto.RoomDatesRequest{Dates: []string{"2026-12-24"}}

	f.roomRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(testRoom(), nil)
	f.propRepo.EXPECT().OwnedByTenant(gomock.Any(), "property-1", "tenant-1").Return(true, nil)
	f.engine.EXPECT().UnblockDates(gomock.Any(), "room-1", gomock.Any()).Return(nil)

	assert.NoError(t, f.svc.UnblockRoomDates(context.Background(), "tenant-1", "room-1", req))
}
