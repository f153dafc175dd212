package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"stayhub/config"
	"stayhub/infras/notifier"
	"stayhub/infras/otel"
	"stayhub/infras/queue"
	availService "stayhub/internal/domains/availability/service"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/repository"
	propertyModel "stayhub/internal/domains/property/model"
	propertyRepo "stayhub/internal/domains/property/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListFilter) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, id, userID string) (dto.BookingResponse, error)
	SubmitPaymentProof(ctx context.Context, id, userID string, req dto.SubmitPaymentProofRequest) (dto.BookingResponse, error)
	ReviewPaymentProof(ctx context.Context, id, tenantID string, req dto.ReviewPaymentProofRequest) (dto.BookingResponse, error)
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	ExpireIfUnpaid(ctx context.Context, bookingID string) error
	VerifyTenantPropertyAccess(ctx context.Context, tenantID, propertyID string) error
	BlockRoomDates(ctx context.Context, tenantID, roomID string, req dto.RoomDatesRequest) error
	UnblockRoomDates(ctx context.Context, tenantID, roomID string, req dto.RoomDatesRequest) error
}

type serviceImpl struct {
	repo         repository.Booking
	proofRepo    repository.PaymentProof
	roomRepo     propertyRepo.Room
	propertyRepo propertyRepo.Property
	engine       availService.Engine
	dispatcher   queue.Dispatcher
	notifier     notifier.Notifier
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	proofRepo repository.PaymentProof,
	roomRepo propertyRepo.Room,
	propRepo propertyRepo.Property,
	engine availService.Engine,
	dispatcher queue.Dispatcher,
	notify notifier.Notifier,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		proofRepo:    proofRepo,
		roomRepo:     roomRepo,
		propertyRepo: propRepo,
		engine:       engine,
		dispatcher:   dispatcher,
		notifier:     notify,
		cfg:          cfg,
		cache:        redisCache,
		otel:         otl,
	}
}

// generateOrderCode builds a human-readable reference like STAY-20260827-4F09A1.
func generateOrderCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])

	return fmt.Sprintf("STAY-%s-%s", now.Format("20060102"), suffix)
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.StayRange()
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room")

		return res, fmt.Errorf("failed to load room: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room") //nolint:wrapcheck
	}

	property, err := s.propertyRepo.GetByID(ctx, room.PropertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load property")

		return res, fmt.Errorf("failed to load property: %w", err)
	}

	if property.ID == "" || !property.Active {
		return res, failure.NotFound("property") //nolint:wrapcheck
	}

	available, err := s.engine.IsRoomAvailable(ctx, room, checkIn, checkOut, req.Guests)
	if err != nil {
		return res, err
	}

	if !available {
		return res, failure.Conflict("room is not available for the requested dates") //nolint:wrapcheck
	}

	total, err := s.engine.CalculateStayTotal(ctx, room, checkIn, checkOut, req.Qty)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	expiresAt := now.Add(time.Duration(s.cfg.Booking.PaymentWindowMinutes) * time.Minute)

	booking := model.Booking{
		ID:            uuid.NewString(),
		OrderCode:     generateOrderCode(now),
		UserID:        userID,
		TenantID:      property.TenantID,
		PropertyID:    property.ID,
		RoomID:        room.ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Nights:        nights,
		Qty:           req.Qty,
		PricePerNight: total / float64(nights*req.Qty),
		TotalAmount:   total,
		Status:        model.StatusWaitingPayment,
		PaymentMethod: req.PaymentMethod,
		ExpiresAt:     &expiresAt,
	}
	booking.CreatedAt = now
	booking.ModifiedAt = now
	booking.CreatedBy = userID
	booking.ModifiedBy = userID

	if err = s.repo.InsertWithAvailability(ctx, booking); err != nil {
		return res, err
	}

	// The periodic sweep catches this booking anyway if the enqueue fails.
	if enqueueErr := s.dispatcher.EnqueueExpiration(ctx, booking.ID, expiresAt); enqueueErr != nil {
		log.Error().Err(enqueueErr).Str("booking_id", booking.ID).Msg("failed to enqueue expiration task")
	}

	s.notifier.NotifyBestEffort(ctx, notifier.Event{
		Type:      notifier.EventBookingCreated,
		BookingID: booking.ID,
		OrderCode: booking.OrderCode,
		UserID:    booking.UserID,
	})

	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filterGroup := filter.ToFilterGroup()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filterGroup)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadOwnedBooking(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusWaitingPayment {
		return res, failure.InvalidState(fmt.Sprintf("booking in status %s cannot be canceled by the guest", booking.Status)) //nolint:wrapcheck
	}

	now := timezone.Now()
	mod := map[string]any{
		model.FieldStatus:        model.StatusCanceled,
		model.FieldExpiresAt:     nil,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = model.StatusCanceled
	booking.ExpiresAt = nil
	booking.ModifiedAt = now

	s.notifier.NotifyBestEffort(ctx, notifier.Event{
		Type:      notifier.EventBookingCanceled,
		BookingID: booking.ID,
		OrderCode: booking.OrderCode,
		UserID:    booking.UserID,
	})

	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) SubmitPaymentProof(ctx context.Context, id, userID string, req dto.SubmitPaymentProofRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitPaymentProof")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadOwnedBooking(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusWaitingPayment {
		return res, failure.InvalidState(fmt.Sprintf("payment proof cannot be submitted in status %s", booking.Status)) //nolint:wrapcheck
	}

	if booking.PaymentMethod != model.PaymentMethodManualTransfer {
		return res, failure.InvalidState("payment proof only applies to manual transfer bookings") //nolint:wrapcheck
	}

	now := timezone.Now()

	proof := model.PaymentProof{
		ID:         uuid.NewString(),
		BookingID:  booking.ID,
		ImageURL:   req.ImageURL,
		UploadedAt: now,
	}
	proof.CreatedAt = now
	proof.ModifiedAt = now
	proof.CreatedBy = userID
	proof.ModifiedBy = userID

	if err = s.proofRepo.Insert(ctx, proof); err != nil {
		log.Error().Err(err).Msg("failed to save payment proof")

		return res, fmt.Errorf("failed to save payment proof: %w", err)
	}

	// Proof submitted on time, so the payment deadline no longer applies.
	mod := map[string]any{
		model.FieldStatus:        model.StatusWaitingConfirmation,
		model.FieldExpiresAt:     nil,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to move booking to waiting confirmation")

		return res, fmt.Errorf("failed to move booking to waiting confirmation: %w", err)
	}

	booking.Status = model.StatusWaitingConfirmation
	booking.ExpiresAt = nil
	booking.ModifiedAt = now

	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ReviewPaymentProof(ctx context.Context, id, tenantID string, req dto.ReviewPaymentProofRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewPaymentProof")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if booking.TenantID != tenantID {
		return res, failure.ResourceRestrictedError
	}

	if booking.Status != model.StatusWaitingConfirmation {
		return res, failure.InvalidState(fmt.Sprintf("payment proof cannot be reviewed in status %s", booking.Status)) //nolint:wrapcheck
	}

	proof, err := s.proofRepo.GetByBookingID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load payment proof")

		return res, fmt.Errorf("failed to load payment proof: %w", err)
	}

	if proof.ID == "" {
		return res, failure.NotFound(model.ProofEntityName) //nolint:wrapcheck
	}

	now := timezone.Now()

	if req.Action == dto.ReviewActionAccept {
		err = s.acceptProof(ctx, &booking, proof, tenantID, now)
	} else {
		err = s.rejectProof(ctx, &booking, proof, tenantID, now)
	}

	if err != nil {
		return res, err
	}

	s.invalidate(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) acceptProof(ctx context.Context, booking *model.Booking, proof model.PaymentProof, tenantID string, now time.Time) error {
	mod := map[string]any{
		model.FieldStatus:        model.StatusProcessing,
		model.FieldPaidAt:        now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: tenantID,
	}

	if err := s.repo.Update(ctx, mod, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to accept payment proof")

		return fmt.Errorf("failed to accept payment proof: %w", err)
	}

	proofMod := map[string]any{
		model.ProofFieldAcceptedAt: now,
		constant.FieldModifiedAt:   now,
		constant.FieldModifiedBy:   tenantID,
	}

	if err := s.proofRepo.Update(ctx, proofMod, shared.FilterByID(proof.ID, model.ProofFieldID, model.ProofTableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark payment proof accepted")

		return fmt.Errorf("failed to mark payment proof accepted: %w", err)
	}

	booking.Status = model.StatusProcessing
	booking.PaidAt = &now
	booking.ModifiedAt = now

	s.notifier.NotifyBestEffort(ctx, notifier.Event{
		Type:      notifier.EventPaymentProofReviewed,
		BookingID: booking.ID,
		OrderCode: booking.OrderCode,
		UserID:    booking.UserID,
	})

	return nil
}

// rejectProof sends the booking back to WAITING_PAYMENT with a fresh deadline, so
// the guest gets a full payment window to upload a new proof.
func (s *serviceImpl) rejectProof(ctx context.Context, booking *model.Booking, proof model.PaymentProof, tenantID string, now time.Time) error {
	expiresAt := now.Add(time.Duration(s.cfg.Booking.PaymentWindowMinutes) * time.Minute)

	mod := map[string]any{
		model.FieldStatus:        model.StatusWaitingPayment,
		model.FieldExpiresAt:     expiresAt,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: tenantID,
	}

	if err := s.repo.Update(ctx, mod, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reject payment proof")

		return fmt.Errorf("failed to reject payment proof: %w", err)
	}

	proofMod := map[string]any{
		model.ProofFieldRejectedAt: now,
		constant.FieldModifiedAt:   now,
		constant.FieldModifiedBy:   tenantID,
	}

	if err := s.proofRepo.Update(ctx, proofMod, shared.FilterByID(proof.ID, model.ProofFieldID, model.ProofTableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark payment proof rejected")

		return fmt.Errorf("failed to mark payment proof rejected: %w", err)
	}

	booking.Status = model.StatusWaitingPayment
	booking.ExpiresAt = &expiresAt
	booking.ModifiedAt = now

	if enqueueErr := s.dispatcher.EnqueueExpiration(ctx, booking.ID, expiresAt); enqueueErr != nil {
		log.Error().Err(enqueueErr).Str("booking_id", booking.ID).Msg("failed to enqueue expiration task")
	}

	s.notifier.NotifyBestEffort(ctx, notifier.Event{
		Type:      notifier.EventPaymentProofReviewed,
		BookingID: booking.ID,
		OrderCode: booking.OrderCode,
		UserID:    booking.UserID,
	})

	return nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay := dto.CreateBookingRequest{CheckIn: req.CheckIn, CheckOut: req.CheckOut}

	checkIn, checkOut, err := stay.StayRange()
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room")

		return res, fmt.Errorf("failed to load room: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room") //nolint:wrapcheck
	}

	available, err := s.engine.IsRoomAvailable(ctx, room, checkIn, checkOut, req.Guests)
	if err != nil {
		return res, err
	}

	if !available {
		return dto.CheckAvailabilityResponse{Available: false}, nil
	}

	total, err := s.engine.CalculateStayTotal(ctx, room, checkIn, checkOut, 1)
	if err != nil {
		return res, err
	}

	return dto.CheckAvailabilityResponse{Available: true, TotalAmount: total}, nil
}

// ExpireIfUnpaid handles the delayed single-shot expiration task. It is a no-op when
// the booking already left WAITING_PAYMENT or received a new deadline, so stale tasks
// from a rejected proof cycle cannot expire a live booking.
func (s *serviceImpl) ExpireIfUnpaid(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpireIfUnpaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" || booking.Status != model.StatusWaitingPayment {
		return nil
	}

	now := timezone.Now()
	if booking.ExpiresAt == nil || booking.ExpiresAt.After(now) {
		return nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusWaitingPayment,
				Table:    model.TableName,
			},
		},
	}

	extra := map[string]any{
		model.FieldExpiresAt:     nil,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: constant.SystemActor,
	}

	summaries, err := s.repo.TransitionWhere(ctx, filter, model.StatusExpired, extra)
	if err != nil {
		log.Error().Err(err).Msg("failed to expire booking")

		return fmt.Errorf("failed to expire booking: %w", err)
	}

	for _, summary := range summaries {
		s.notifier.NotifyBestEffort(ctx, notifier.Event{
			Type:      notifier.EventBookingExpired,
			BookingID: summary.ID,
			OrderCode: summary.OrderCode,
			UserID:    summary.UserID,
		})
	}

	if len(summaries) > 0 {
		s.invalidate(ctx)
	}

	return nil
}

// VerifyTenantPropertyAccess confirms the property belongs to the tenant. Tenants
// scope list filters and manage room blocks only on their own properties.
func (s *serviceImpl) VerifyTenantPropertyAccess(ctx context.Context, tenantID, propertyID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyTenantPropertyAccess")
	defer scope.End()
	defer scope.TraceIfError(err)

	if tenantID == "" || propertyID == "" {
		return failure.ResourceRestrictedError
	}

	owned, err := s.propertyRepo.OwnedByTenant(ctx, propertyID, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check property ownership")

		return fmt.Errorf("failed to check property ownership: %w", err)
	}

	if !owned {
		return failure.ResourceRestrictedError
	}

	return nil
}

func (s *serviceImpl) BlockRoomDates(ctx context.Context, tenantID, roomID string, req dto.RoomDatesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BlockRoomDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, dates, err := s.loadTenantRoom(ctx, tenantID, roomID, req)
	if err != nil {
		return err
	}

	return s.engine.BlockDates(ctx, room.ID, dates) //nolint:wrapcheck
}

func (s *serviceImpl) UnblockRoomDates(ctx context.Context, tenantID, roomID string, req dto.RoomDatesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnblockRoomDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, dates, err := s.loadTenantRoom(ctx, tenantID, roomID, req)
	if err != nil {
		return err
	}

	return s.engine.UnblockDates(ctx, room.ID, dates) //nolint:wrapcheck
}

func (s *serviceImpl) loadTenantRoom(ctx context.Context, tenantID, roomID string, req dto.RoomDatesRequest) (propertyModel.Room, []time.Time, error) {
	dates, err := req.ParseDates()
	if err != nil {
		return propertyModel.Room{}, nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room")

		return room, nil, fmt.Errorf("failed to load room: %w", err)
	}

	if room.ID == "" {
		return room, nil, failure.NotFound("room") //nolint:wrapcheck
	}

	if err = s.VerifyTenantPropertyAccess(ctx, tenantID, room.PropertyID); err != nil {
		return room, nil, err
	}

	return room, dates, nil
}

func (s *serviceImpl) loadOwnedBooking(ctx context.Context, id, userID string) (model.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if booking.UserID != userID {
		return booking, failure.ResourceRestrictedError
	}

	return booking, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}
