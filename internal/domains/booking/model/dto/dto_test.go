package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	gDto "stayhub/shared/dto"
	"stayhub/shared/timezone"
)

func TestCreateBookingRequest_StayRange(t *testing.T) {
	futureIn := timezone.Now().AddDate(0, 0, 14).Format("2006-01-02")
	futureOut := timezone.Now().AddDate(0, 0, 17).Format("2006-01-02")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{
			name:     "valid range",
			checkIn:  futureIn,
			checkOut: futureOut,
		},
		{
			name:     "check-out equals check-in",
			checkIn:  futureIn,
			checkOut: futureIn,
			wantErr:  true,
		},
		{
			name:     "check-out before check-in",
			checkIn:  futureOut,
			checkOut: futureIn,
			wantErr:  true,
		},
		{
			name:     "check-in in the past",
			checkIn:  "2020-01-01",
			checkOut: "2020-01-04",
			wantErr:  true,
		},
		{
			name:     "malformed check-in",
			checkIn:  "10/09/2026",
			checkOut: futureOut,
			wantErr:  true,
		},
		{
			name:     "malformed check-out",
			checkIn:  futureIn,
			checkOut: "next friday",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{CheckIn: tt.checkIn, CheckOut: tt.checkOut}

			checkIn, checkOut, err := req.StayRange()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, checkIn.Before(checkOut))
		})
	}
}

func TestRoomDatesRequest_ParseDates(t *testing.T) {
	t.Run("parses day-level dates", func(t *testing.T) {
		req := dto.RoomDatesRequest{Dates: []string{"2026-12-24", "2026-12-25"}}

		dates, err := req.ParseDates()

		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, "2026-12-24", dates[0].Format("2006-01-02"))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		req := dto.RoomDatesRequest{Dates: []string{"2026-12-24", "christmas"}}

		_, err := req.ParseDates()

		assert.Error(t, err)
	})
}

func TestListFilter_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings?property_id=property-1&status=processing,%20completed,bogus&include_expired=true&search=STAY-2026", nil)

	var filter dto.ListFilter
	filter.FromRequest(r)

	assert.Equal(t, "property-1", filter.PropertyID)
	assert.Equal(t, []string{model.StatusProcessing, model.StatusCompleted}, filter.Statuses)
	assert.True(t, filter.IncludeExpired)
	assert.Equal(t, "STAY-2026", filter.Search)
}

func TestListFilter_ToFilterGroup(t *testing.T) {
	fieldsOf := func(group gDto.FilterGroup) map[string]gDto.Filter {
		byField := map[string]gDto.Filter{}
		for _, raw := range group.Filters {
			filter, ok := raw.(gDto.Filter)
			require.True(t, ok)
			byField[filter.Field] = filter
		}

		return byField
	}

	t.Run("expired bookings are hidden by default", func(t *testing.T) {
		filter := dto.ListFilter{UserID: "user-1"}

		byField := fieldsOf(filter.ToFilterGroup())

		require.Contains(t, byField, model.FieldStatus)
		assert.Equal(t, gDto.FilterOperatorNotEq, byField[model.FieldStatus].Operator)
		assert.Equal(t, model.StatusExpired, byField[model.FieldStatus].Value)

		require.Contains(t, byField, model.FieldUserID)
		assert.Equal(t, "user-1", byField[model.FieldUserID].Value)
	})

	t.Run("explicit statuses replace the expired exclusion", func(t *testing.T) {
		filter := dto.ListFilter{
			TenantID: "tenant-1",
			Statuses: []string{model.StatusExpired, model.StatusCanceled},
		}

		byField := fieldsOf(filter.ToFilterGroup())

		require.Contains(t, byField, model.FieldStatus)
		assert.Equal(t, gDto.FilterOperatorIn, byField[model.FieldStatus].Operator)
		assert.Equal(t, []string{model.StatusExpired, model.StatusCanceled}, byField[model.FieldStatus].Value)
	})

	t.Run("include expired drops the status predicate", func(t *testing.T) {
		filter := dto.ListFilter{UserID: "user-1", IncludeExpired: true}

		byField := fieldsOf(filter.ToFilterGroup())

		assert.NotContains(t, byField, model.FieldStatus)
	})

	t.Run("search matches the order code", func(t *testing.T) {
		filter := dto.ListFilter{IncludeExpired: true, Search: "STAY-2026"}

		byField := fieldsOf(filter.ToFilterGroup())

		require.Contains(t, byField, model.FieldOrderCode)
		assert.Equal(t, gDto.FilterOperatorLike, byField[model.FieldOrderCode].Operator)
	})
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:            "booking-1",
		OrderCode:     "STAY-20260910-AB12CD",
		UserID:        "user-1",
		Status:        model.StatusWaitingPayment,
		PaymentMethod: model.PaymentMethodManualTransfer,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, model.StatusWaitingPayment, res.Status)
	assert.Empty(t, res.ExpiresAt)
	assert.Empty(t, res.PaidAt)
}
