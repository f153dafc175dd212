package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stayhub/infras/otel"
	availModel "stayhub/internal/domains/availability/model"
	"stayhub/internal/domains/availability/repository"
	propertyModel "stayhub/internal/domains/property/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OverlapChecker reports whether a room already has a non-terminal booking whose
// [checkIn, checkOut) range intersects the given one. Implemented by the booking
// repository so the engine never loads booking rows itself.
type OverlapChecker interface {
	HasOverlappingBooking(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

// Engine decides bookability and computes stay pricing. It has no side effects on
// bookings; block/unblock operations only touch room_availabilities rows.
type Engine interface {
	IsRoomAvailable(ctx context.Context, room propertyModel.Room, checkIn, checkOut time.Time, guests int) (bool, error)
	NightlyPrices(ctx context.Context, room propertyModel.Room, checkIn, checkOut time.Time) ([]float64, error)
	CalculateStayTotal(ctx context.Context, room propertyModel.Room, checkIn, checkOut time.Time, qty int) (float64, error)
	CalculatePropertyMinPrice(ctx context.Context, rooms []propertyModel.Room, checkIn, checkOut time.Time) (float64, error)
	BlockDates(ctx context.Context, roomID string, dates []time.Time) error
	UnblockDates(ctx context.Context, roomID string, dates []time.Time) error
}

type engineImpl struct {
	blocks      repository.RoomBlock
	adjustments repository.PriceAdjustment
	bookings    OverlapChecker
	otel        otel.Otel
}

func New(blocks repository.RoomBlock, adjustments repository.PriceAdjustment, bookings OverlapChecker, otel otel.Otel) Engine {
	return &engineImpl{
		blocks:      blocks,
		adjustments: adjustments,
		bookings:    bookings,
		otel:        otel,
	}
}

func validateRange(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return failure.BadRequestFromString("check-out must be after check-in")
	}

	return nil
}

func (e *engineImpl) IsRoomAvailable(ctx context.Context, room propertyModel.Room, checkIn, checkOut time.Time, guests int) (res bool, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateRange(checkIn, checkOut); err != nil {
		return false, err
	}

	if !room.Active || guests > room.Capacity {
		return false, nil
	}

	blocked, err := e.blocks.AnyBlocked(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to check blocked dates")

		return false, fmt.Errorf("failed to check blocked dates: %w", err)
	}

	if blocked {
		return false, nil
	}

	overlapping, err := e.bookings.HasOverlappingBooking(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to check overlapping bookings")

		return false, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	return !overlapping, nil
}

// NightlyPrices returns the price of each night of the stay, checkIn inclusive and
// checkOut exclusive, with any matching adjustment applied per night.
func (e *engineImpl) NightlyPrices(ctx context.Context, room propertyModel.Room, checkIn, checkOut time.Time) (res []float64, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NightlyPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	adjustments, err := e.adjustments.GetForRoom(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to load price adjustments")

		return nil, fmt.Errorf("failed to load price adjustments: %w", err)
	}

	prices := []float64{}

	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		price := room.BasePrice

		for idx := range adjustments {
			if adjustments[idx].AppliesTo(night) {
				price = adjustments[idx].Apply(room.BasePrice)

				break
			}
		}

		prices = append(prices, price)
	}

	return prices, nil
}

func (e *engineImpl) CalculateStayTotal(ctx context.Context, room propertyModel.Room, checkIn, checkOut time.Time, qty int) (res float64, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculateStayTotal")
	defer scope.End()
	defer scope.TraceIfError(err)

	if qty < 1 {
		return 0, failure.BadRequestFromString("qty must be at least 1")
	}

	prices, err := e.NightlyPrices(ctx, room, checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, price := range prices {
		total += price
	}

	return total * float64(qty), nil
}

// CalculatePropertyMinPrice returns the cheapest stay total among the rooms that are
// available for the range. Returns NotFound when no room is available.
func (e *engineImpl) CalculatePropertyMinPrice(ctx context.Context, rooms []propertyModel.Room, checkIn, checkOut time.Time) (res float64, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculatePropertyMinPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	found := false
	minTotal := 0.0

	for idx := range rooms {
		available, err := e.IsRoomAvailable(ctx, rooms[idx], checkIn, checkOut, 1)
		if err != nil {
			return 0, err
		}

		if !available {
			continue
		}

		total, err := e.CalculateStayTotal(ctx, rooms[idx], checkIn, checkOut, 1)
		if err != nil {
			return 0, err
		}

		if !found || total < minTotal {
			found = true
			minTotal = total
		}
	}

	if !found {
		return 0, failure.NotFound("no available room for the requested range") //nolint:wrapcheck
	}

	return minTotal, nil
}

func (e *engineImpl) BlockDates(ctx context.Context, roomID string, dates []time.Time) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BlockDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(dates) == 0 {
		return failure.BadRequestFromString("at least one date is required")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	blocks := make([]availModel.RoomBlock, len(dates))
	for idx, date := range dates {
		blocks[idx] = availModel.RoomBlock{
			ID:          uuid.NewString(),
			RoomID:      roomID,
			Date:        date,
			IsAvailable: false,
		}
		blocks[idx].CreatedAt = timezone.Now()
		blocks[idx].ModifiedAt = timezone.Now()
		blocks[idx].CreatedBy = user
		blocks[idx].ModifiedBy = user
	}

	if err = e.blocks.InsertBulk(ctx, blocks); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to block dates")

		return fmt.Errorf("failed to block dates: %w", err)
	}

	return nil
}

func (e *engineImpl) UnblockDates(ctx context.Context, roomID string, dates []time.Time) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnblockDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(dates) == 0 {
		return failure.BadRequestFromString("at least one date is required")
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    availModel.BlockFieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    availModel.BlockTableName,
			},
			gDto.Filter{
				Field:    availModel.BlockFieldDate,
				Operator: gDto.FilterOperatorIn,
				Value:    dates,
				Table:    availModel.BlockTableName,
			},
		},
	}

	if err = e.blocks.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to unblock dates")

		return fmt.Errorf("failed to unblock dates: %w", err)
	}

	return nil
}
