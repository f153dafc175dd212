package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "stayhub/infras/otel/mocks"
	"stayhub/shared/dto"
)

type capturedExec struct {
	query string
	args  map[string]any
}

func (c *capturedExec) NamedExecContext(_ context.Context, query string, arg interface{}) (sql.Result, error) {
	c.query = query
	c.args, _ = arg.(map[string]any)

	return nil, nil
}

type bookingRow struct {
	ID     string `db:"id"`
	Status string `db:"status"`
}

func TestRepository_Update_FilterBindingSurvivesModOnSameColumn(t *testing.T) {
	repo := NewRepository[bookingRow]("booking", "bookings", "id", nil, otelMocks.NewOtel())
	exec := &capturedExec{}

	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "WAITING_PAYMENT",
				Table:    "bookings",
			},
		},
	}

	mod := map[string]any{
		"status":      "EXPIRED",
		"modified_by": "system",
	}

	err := repo.update(context.Background(), exec, mod, filter)
	require.NoError(t, err)

	assert.Contains(t, exec.query, "status = :set_status")
	assert.Contains(t, exec.query, "bookings.status = :status")

	assert.Equal(t, "WAITING_PAYMENT", exec.args["status"])
	assert.Equal(t, "EXPIRED", exec.args["set_status"])
	assert.Equal(t, "system", exec.args["set_modified_by"])
}

func TestRepository_Update_ModWithoutFilterOverlap(t *testing.T) {
	repo := NewRepository[bookingRow]("booking", "bookings", "id", nil, otelMocks.NewOtel())
	exec := &capturedExec{}

	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Operator: dto.FilterOperatorEq,
				Value:    "booking-1",
				Table:    "bookings",
			},
		},
	}

	err := repo.update(context.Background(), exec, map[string]any{"status": "CANCELED"}, filter)
	require.NoError(t, err)

	assert.Contains(t, exec.query, "status = :set_status")
	assert.Equal(t, "booking-1", exec.args["id"])
	assert.Equal(t, "CANCELED", exec.args["set_status"])
}
