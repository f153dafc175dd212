package booking

import (
	"net/http"
	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/service"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/validator"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.CheckAvailability)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticate)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/payment-proof", handler.SubmitPaymentProof)

		routerGroup.With(handler.auth.RequireRoles(constant.RoleTenant, constant.RoleAdmin)).
			Post("/{id}/payment-proof/review", handler.ReviewPaymentProof)
	})

	router.Route("/rooms/{id}/blocks", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticate)
		routerGroup.Use(handler.auth.RequireRoles(constant.RoleTenant))

		routerGroup.Post("/", handler.BlockRoomDates)
		routerGroup.Delete("/", handler.UnblockRoomDates)
	})
}

// CreateBooking places a new booking for the authenticated guest.
// @Summary Create a new booking
// @Description Book a room for a date range. The booking starts in WAITING_PAYMENT with a payment deadline.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := handler.service.Create(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists bookings visible to the caller.
// @Summary Get bookings
// @Description List bookings with pagination. Guests see their own bookings, tenants the ones on their properties. EXPIRED bookings are hidden unless include_expired=true.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property ID"
// @Param status query string false "Comma-separated status filter"
// @Param include_expired query bool false "Include expired bookings"
// @Param search query string false "Search by order code"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := dto.ListFilter{}
	filter.FromRequest(request)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch role {
	case constant.RoleTenant:
		filter.TenantID, _ = ctx.Value(constant.ContextKeyTenantID).(string)

		if filter.PropertyID != "" {
			if err := handler.service.VerifyTenantPropertyAccess(ctx, filter.TenantID, filter.PropertyID); err != nil {
				scope.TraceError(err)
				response.WithError(writer, err)

				return
			}
		}
	case constant.RoleAdmin:
	default:
		filter.UserID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID returns a single booking.
// @Summary Get booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking detail"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	if !handler.canAccess(ctx, booking) {
		response.WithError(writer, failureRestricted())

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// CancelBooking cancels a booking that is still waiting for payment.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Canceled booking"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := handler.service.Cancel(ctx, id, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// SubmitPaymentProof uploads a transfer receipt for a manual-transfer booking.
// @Summary Submit payment proof
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SubmitPaymentProofRequest true "Payment proof"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking waiting for confirmation"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/payment-proof [post]
// @Security BearerAuth
func (handler *Handler) SubmitPaymentProof(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitPaymentProof")
	defer scope.End()

	req := dto.SubmitPaymentProofRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := handler.service.SubmitPaymentProof(ctx, id, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit payment proof")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// ReviewPaymentProof accepts or rejects a submitted payment proof.
// @Summary Review payment proof
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ReviewPaymentProofRequest true "Review action"
// @Success 200 {object} response.Data[dto.BookingResponse] "Reviewed booking"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/payment-proof/review [post]
// @Security BearerAuth
func (handler *Handler) ReviewPaymentProof(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewPaymentProof")
	defer scope.End()

	req := dto.ReviewPaymentProofRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	tenant, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	booking, err := handler.service.ReviewPaymentProof(ctx, id, tenant, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to review payment proof")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// CheckAvailability reports whether a room is bookable for a date range.
// @Summary Check room availability
// @Tags Booking
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := request.URL.Query()

	guests := 1
	if raw := query.Get(constant.RequestParamGuests); raw != "" {
		parsed, err := parsePositiveInt(raw)
		if err != nil {
			response.WithError(writer, err)

			return
		}

		guests = parsed
	}

	req := dto.CheckAvailabilityRequest{
		RoomID:   query.Get(constant.RequestParamRoomID),
		CheckIn:  query.Get(constant.RequestParamCheckIn),
		CheckOut: query.Get(constant.RequestParamCheckOut),
		Guests:   guests,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	result, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, result)
}

// BlockRoomDates blocks dates on a room the tenant owns.
// @Summary Block room dates
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.RoomDatesRequest true "Dates to block"
// @Success 200 {object} response.Message "Dates blocked"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/blocks [post]
// @Security BearerAuth
func (handler *Handler) BlockRoomDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockRoomDates")
	defer scope.End()

	req := dto.RoomDatesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	tenant, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	if err := handler.service.BlockRoomDates(ctx, tenant, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block room dates")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Dates blocked")
}

// UnblockRoomDates removes blocks from a room the tenant owns.
// @Summary Unblock room dates
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.RoomDatesRequest true "Dates to unblock"
// @Success 200 {object} response.Message "Dates unblocked"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/blocks [delete]
// @Security BearerAuth
func (handler *Handler) UnblockRoomDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockRoomDates")
	defer scope.End()

	req := dto.RoomDatesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	tenant, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	if err := handler.service.UnblockRoomDates(ctx, tenant, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock room dates")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Dates unblocked")
}
