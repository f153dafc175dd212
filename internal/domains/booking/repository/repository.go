package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/booking/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/logger"
	gRepo "stayhub/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	InsertWithAvailability(ctx context.Context, booking model.Booking) error
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	GetByOrderCode(ctx context.Context, orderCode string) (model.Booking, error)
	HasOverlappingBooking(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	TransitionWhere(ctx context.Context, filter gDto.FilterGroup, newStatus string, extra map[string]any) ([]model.Summary, error)
}

type PaymentProof interface {
	Insert(ctx context.Context, proof model.PaymentProof) error
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	GetByBookingID(ctx context.Context, bookingID string) (model.PaymentProof, error)
}

type bookingImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Booking {
	return &bookingImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *bookingImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}

func (repo *bookingImpl) GetByOrderCode(ctx context.Context, orderCode string) (model.Booking, error) {
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

const overlapQuery = `SELECT EXISTS(
	SELECT 1 FROM bookings
	WHERE room_id = :room_id
	AND status IN ('WAITING_PAYMENT', 'WAITING_CONFIRMATION', 'PROCESSING')
	AND check_in_date < :check_out
	AND check_out_date > :check_in
)`

// HasOverlappingBooking reports whether an active booking intersects the half-open
// [checkIn, checkOut) range. Terminal bookings never hold a room.
func (repo *bookingImpl) HasOverlappingBooking(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasOverlappingBooking")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, overlapQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare overlap query: %w", err)
	}
	defer prepare.Close()

	exist := false

	err = prepare.GetContext(ctx, &exist, map[string]any{
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkOut,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	return exist, nil
}

// InsertWithAvailability persists the booking after locking its room row and
// re-checking overlaps inside the same transaction, so two concurrent requests for
// the same range cannot both commit.
func (repo *bookingImpl) InsertWithAvailability(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithAvailability")
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

	var roomID string

	err = tx.GetContext(ctx, &roomID, "SELECT id FROM rooms WHERE id = $1 FOR UPDATE", booking.RoomID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	overlapping := false

	rows, err := tx.NamedQuery(overlapQuery, map[string]any{
		"room_id":   booking.RoomID,
		"check_in":  booking.CheckInDate,
		"check_out": booking.CheckOutDate,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to recheck overlapping bookings: %w", err)
	}

	if rows.Next() {
		if err = rows.Scan(&overlapping); err != nil {
			rows.Close()
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to scan overlap result: %w", err)
		}
	}
	rows.Close()

	if overlapping {
		return failure.Conflict("room is no longer available for the requested dates") //nolint:wrapcheck
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil
}

// TransitionWhere moves every booking matching the filter to newStatus in a single
// transaction and returns the summaries of the rows it changed. The selection is
// locked before the update, so a concurrent run of the same job sees an empty match
// and becomes a no-op.
func (repo *bookingImpl) TransitionWhere(ctx context.Context, filter gDto.FilterGroup, newStatus string, extra map[string]any) (summaries []model.Summary, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionWhere")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return nil, failure.BadRequestFromString("transition requires a filter") //nolint:wrapcheck
	}

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	selectQuery := fmt.Sprintf(
		"SELECT id, order_code, user_id, room_id, status, check_in_date, check_out_date FROM %s %s FOR UPDATE",
		model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, selectQuery)

	rows, err := tx.NamedQuery(selectQuery, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to select bookings for transition: %w", err)
	}

	for rows.Next() {
		var summary model.Summary
		if err = rows.StructScan(&summary); err != nil {
			rows.Close()
			logger.ErrorWithStack(err)

			return nil, fmt.Errorf("failed to scan booking summary: %w", err)
		}

		summaries = append(summaries, summary)
	}
	rows.Close()

	if len(summaries) == 0 {
		if err = tx.Commit(); err != nil {
			logger.ErrorWithStack(err)

			return nil, fmt.Errorf("failed to commit transition: %w", err)
		}

		return nil, nil
	}

	mod := map[string]any{model.FieldStatus: newStatus}
	for col, val := range extra {
		mod[col] = val
	}

	if err = repo.UpdateTx(ctx, tx, mod, filter); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	return summaries, nil
}

type paymentProofImpl struct {
	gRepo.Repository[model.PaymentProof]
}

func NewPaymentProof(db *postgres.Connection, otl otel.Otel) PaymentProof {
	return &paymentProofImpl{
		Repository: gRepo.NewRepository[model.PaymentProof](model.ProofEntityName, model.ProofTableName, model.ProofFieldID, db, otl),
	}
}

func (repo *paymentProofImpl) GetByBookingID(ctx context.Context, bookingID string) (model.PaymentProof, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.ProofFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.ProofTableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}
