package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/availability/model"
	gDto "stayhub/shared/dto"
	gRepo "stayhub/shared/repository"
	"time"
)

type RoomBlock interface {
	Insert(ctx context.Context, block model.RoomBlock) error
	InsertBulk(ctx context.Context, blocks []model.RoomBlock) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomBlock, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	AnyBlocked(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

type PriceAdjustment interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PriceAdjustment, error)
	GetForRoom(ctx context.Context, roomID string) ([]model.PriceAdjustment, error)
}

type roomBlockImpl struct {
	gRepo.Repository[model.RoomBlock]
}

func NewRoomBlock(db *postgres.Connection, otel otel.Otel) RoomBlock {
	return &roomBlockImpl{
		Repository: gRepo.NewRepository[model.RoomBlock](model.BlockEntityName, model.BlockTableName, model.BlockFieldID, db, otel),
	}
}

// AnyBlocked reports whether any night of the half-open [checkIn, checkOut) range is
// explicitly blocked for the room. Block rows hold date-only values, so the exclusive
// checkout bound becomes an inclusive bound on the night before.
func (repo *roomBlockImpl) AnyBlocked(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	lastNight := checkOut.AddDate(0, 0, -1)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.BlockFieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.BlockTableName,
			},
			gDto.Filter{
				Field:    model.BlockFieldIsAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.BlockTableName,
			},
			gDto.Filter{
				ArgName:  "block_from",
				Field:    model.BlockFieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    checkIn,
				Table:    model.BlockTableName,
			},
			gDto.Filter{
				ArgName:  "block_until",
				Field:    model.BlockFieldDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    lastNight,
				Table:    model.BlockTableName,
			},
		},
	}

	return repo.Exist(ctx, filter)
}

type priceAdjustmentImpl struct {
	gRepo.Repository[model.PriceAdjustment]
}

func NewPriceAdjustment(db *postgres.Connection, otel otel.Otel) PriceAdjustment {
	return &priceAdjustmentImpl{
		Repository: gRepo.NewRepository[model.PriceAdjustment](model.AdjustmentEntityName, model.AdjustmentTableName, model.AdjustmentFieldID, db, otel),
	}
}

func (repo *priceAdjustmentImpl) GetForRoom(ctx context.Context, roomID string) ([]model.PriceAdjustment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.AdjustmentFieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.AdjustmentTableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}
