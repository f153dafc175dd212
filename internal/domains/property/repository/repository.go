package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/property/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gRepo "stayhub/shared/repository"
)

type Property interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Property, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetByID(ctx context.Context, id string) (model.Property, error)
	OwnedByTenant(ctx context.Context, propertyID, tenantID string) (bool, error)
}

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetByID(ctx context.Context, id string) (model.Room, error)
	GetByProperty(ctx context.Context, propertyID string) ([]model.Room, error)
}

type propertyImpl struct {
	gRepo.Repository[model.Property]
}

func NewProperty(db *postgres.Connection, otel otel.Otel) Property {
	return &propertyImpl{
		Repository: gRepo.NewRepository[model.Property](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *propertyImpl) GetByID(ctx context.Context, id string) (model.Property, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *propertyImpl) OwnedByTenant(ctx context.Context, propertyID, tenantID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTenantID,
				Operator: gDto.FilterOperatorEq,
				Value:    tenantID,
				Table:    model.TableName,
			},
		},
	}

	return repo.Exist(ctx, filter)
}

type roomImpl struct {
	gRepo.Repository[model.Room]
}

func NewRoom(db *postgres.Connection, otel otel.Otel) Room {
	return &roomImpl{
		Repository: gRepo.NewRepository[model.Room](model.RoomEntityName, model.RoomTableName, model.RoomFieldID, db, otel),
	}
}

func (repo *roomImpl) GetByID(ctx context.Context, id string) (model.Room, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.RoomFieldID, model.RoomTableName))
}

func (repo *roomImpl) GetByProperty(ctx context.Context, propertyID string) ([]model.Room, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.RoomFieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.RoomTableName,
			},
			gDto.Filter{
				Field:    model.RoomFieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.RoomTableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}
