package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	bookingModel "stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/payment/model"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/logger"
	gRepo "stayhub/shared/repository"
)

type GatewayPayment interface {
	Insert(ctx context.Context, payment model.GatewayPayment) error
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	GetByOrderCode(ctx context.Context, orderCode string) (model.GatewayPayment, error)
	Settle(ctx context.Context, payment model.GatewayPayment, paymentIsNew bool, bookingMod map[string]any) error
}

type gatewayPaymentImpl struct {
	gRepo.Repository[model.GatewayPayment]
	bookings gRepo.Repository[bookingModel.Booking]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) GatewayPayment {
	return &gatewayPaymentImpl{
		Repository: gRepo.NewRepository[model.GatewayPayment](model.EntityName, model.TableName, model.FieldID, db, otl),
		bookings:   gRepo.NewRepository[bookingModel.Booking](bookingModel.EntityName, bookingModel.TableName, bookingModel.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *gatewayPaymentImpl) GetByOrderCode(ctx context.Context, orderCode string) (model.GatewayPayment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOrderCode,
				Operator: gDto.FilterOperatorEq,
				Value:    orderCode,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}

// Settle persists the reconciled payment and the booking transition in one
// transaction, so a crash between the two writes cannot leave them disagreeing.
// An empty bookingMod updates the payment record only.
func (repo *gatewayPaymentImpl) Settle(ctx context.Context, payment model.GatewayPayment, paymentIsNew bool, bookingMod map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".gateway_payment.Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if paymentIsNew {
		err = repo.InsertTx(ctx, tx, payment)
	} else {
		mod := map[string]any{
			model.FieldTransactionID: payment.TransactionID,
			model.FieldStatus:        payment.Status,
			model.FieldRawStatus:     payment.RawStatus,
			model.FieldSettledAt:     payment.SettledAt,
			constant.FieldModifiedAt: payment.ModifiedAt,
			constant.FieldModifiedBy: payment.ModifiedBy,
		}

		err = repo.UpdateTx(ctx, tx, mod, shared.FilterByID(payment.ID, model.FieldID, model.TableName))
	}

	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(bookingMod) > 0 {
		err = repo.bookings.UpdateTx(ctx, tx, bookingMod, shared.FilterByID(payment.BookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit settlement: %w", err)
	}

	return nil
}
