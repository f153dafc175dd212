package dto

import (
	"net/http"
	"stayhub/internal/domains/booking/model"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/timezone"
	"strings"
	"time"
)

type CreateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required"`
	CheckIn       string `json:"check_in"       validate:"required"`
	CheckOut      string `json:"check_out"      validate:"required"`
	Guests        int    `json:"guests"         validate:"required,min=1"`
	Qty           int    `json:"qty"            validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=MANUAL_TRANSFER PAYMENT_GATEWAY"`
}

// StayRange parses the requested dates. Check-in must be before check-out and not in
// the past.
func (c *CreateBookingRequest) StayRange() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	if checkIn.Before(today()) {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must not be in the past") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func today() time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
}

// RoomDatesRequest carries the dates a tenant blocks or unblocks on a room.
type RoomDatesRequest struct {
	Dates []string `json:"dates" validate:"required,min=1"`
}

func (r *RoomDatesRequest) ParseDates() ([]time.Time, error) {
	dates := make([]time.Time, len(r.Dates))

	for idx, raw := range r.Dates {
		date, err := timezone.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			return nil, failure.BadRequestFromString("dates must be formatted as YYYY-MM-DD") //nolint:wrapcheck
		}

		dates[idx] = date
	}

	return dates, nil
}

type SubmitPaymentProofRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

const (
	ReviewActionAccept = "accept"
	ReviewActionReject = "reject"
)

type ReviewPaymentProofRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

type CheckAvailabilityRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests"    validate:"required,min=1"`
}

type CheckAvailabilityResponse struct {
	Available   bool    `json:"available"`
	TotalAmount float64 `json:"total_amount,omitempty"`
}

// ListFilter carries the query parameters for booking reads. EXPIRED rows are
// excluded unless explicitly requested, either via IncludeExpired or by naming the
// status in Statuses.
type ListFilter struct {
	UserID         string
	TenantID       string
	PropertyID     string
	Statuses       []string
	IncludeExpired bool
	Search         string
}

// FromRequest populates the filter from query parameters. Role scoping (forcing
// UserID or TenantID from the auth context) is done by the caller.
func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	if propertyID := query.Get(constant.RequestParamPropertyID); propertyID != "" {
		f.PropertyID = propertyID
	}

	if statuses := query.Get(constant.RequestParamStatus); statuses != "" {
		for _, status := range strings.Split(statuses, ",") {
			status = strings.ToUpper(strings.TrimSpace(status))
			if model.IsValidStatus(status) {
				f.Statuses = append(f.Statuses, status)
			}
		}
	}

	if include := shared.ConvertStringToBool(query.Get(constant.RequestParamIncludeExpired)); include != nil {
		f.IncludeExpired = *include
	}

	if search := query.Get(constant.RequestParamSearch); search != "" {
		f.Search = search
	}
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if f.UserID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.UserID,
			Table:    model.TableName,
		})
	}

	if f.TenantID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldTenantID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.TenantID,
			Table:    model.TableName,
		})
	}

	if f.PropertyID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.PropertyID,
			Table:    model.TableName,
		})
	}

	if len(f.Statuses) > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    f.Statuses,
			Table:    model.TableName,
		})
	} else if !f.IncludeExpired {
		// UX default, not a security boundary: expired bookings are noise in lists.
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorNotEq,
			Value:    model.StatusExpired,
			Table:    model.TableName,
		})
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldOrderCode,
			Operator: gDto.FilterOperatorLike,
			Value:    f.Search,
			Table:    model.TableName,
		})
	}

	return group
}

type BookingResponse struct {
	ID            string  `json:"id"`
	OrderCode     string  `json:"order_code"`
	UserID        string  `json:"user_id"`
	TenantID      string  `json:"tenant_id"`
	PropertyID    string  `json:"property_id"`
	PropertyName  string  `json:"property_name"`
	RoomID        string  `json:"room_id"`
	RoomName      string  `json:"room_name"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	Qty           int     `json:"qty"`
	PricePerNight float64 `json:"price_per_night"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	ExpiresAt     string  `json:"expires_at,omitempty"`
	PaidAt        string  `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.OrderCode = booking.OrderCode
	r.UserID = booking.UserID
	r.TenantID = booking.TenantID
	r.PropertyID = booking.PropertyID
	r.PropertyName = booking.PropertyName
	r.RoomID = booking.RoomID
	r.RoomName = booking.RoomName
	r.CheckIn = booking.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOut = booking.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Nights = booking.Nights
	r.Qty = booking.Qty
	r.PricePerNight = booking.PricePerNight
	r.TotalAmount = booking.TotalAmount
	r.Status = booking.Status
	r.PaymentMethod = booking.PaymentMethod

	if booking.ExpiresAt != nil {
		r.ExpiresAt = timezone.Format(*booking.ExpiresAt, constant.DateFormat)
	}

	if booking.PaidAt != nil {
		r.PaidAt = timezone.Format(*booking.PaidAt, constant.DateFormat)
	}

	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
