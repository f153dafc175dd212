package payment

import (
	"net/http"
	"stayhub/infras/otel"
	bookingService "stayhub/internal/domains/booking/service"
	"stayhub/internal/domains/payment/model/dto"
	"stayhub/internal/domains/payment/service"
	"stayhub/shared/constant"
	"stayhub/shared/validator"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	reconciler service.Reconciler
	bookings   bookingService.Booking
	auth       middleware.Auth
	otel       otel.Otel
}

func New(reconciler service.Reconciler, bookings bookingService.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		reconciler: reconciler,
		bookings:   bookings,
		auth:       auth,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/notifications", handler.HandleNotification)

		routerGroup.With(handler.auth.APIKey).Post("/expire-callback", handler.ExpireCallback)
	})
}

// HandleNotification receives payment gateway webhooks.
// @Summary Handle gateway payment notification
// @Description Verify and apply a payment gateway webhook. Returns 200 once the notification is applied so the gateway stops retrying.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.GatewayNotification true "Gateway notification"
// @Success 200 {object} response.Message "Notification processed"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/notifications [post]
func (handler *Handler) HandleNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleNotification")
	defer scope.End()

	req := dto.GatewayNotification{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate notification body")

		response.WithError(writer, err)

		return
	}

	if err := handler.reconciler.HandleNotification(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to handle gateway notification")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Notification processed")
}

type expireCallbackRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// ExpireCallback expires a single unpaid booking. Called by the task worker and
// usable for manual intervention; protected by the internal API key.
// @Summary Expire an unpaid booking
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body expireCallbackRequest true "Booking reference"
// @Success 200 {object} response.Message "Expiration applied"
// @Failure 403 {object} response.Error
// @Router /v1/payments/expire-callback [post]
// @Security ApiKeyAuth
func (handler *Handler) ExpireCallback(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExpireCallback")
	defer scope.End()

	req := expireCallbackRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.bookings.ExpireIfUnpaid(ctx, req.BookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to expire booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Expiration applied")
}
