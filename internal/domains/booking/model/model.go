package model

import (
	"stayhub/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldOrderCode     = "order_code"
	FieldUserID        = "user_id"
	FieldTenantID      = "tenant_id"
	FieldPropertyID    = "property_id"
	FieldRoomID        = "room_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldNights        = "nights"
	FieldQty           = "qty"
	FieldPricePerNight = "price_per_night"
	FieldTotalAmount   = "total_amount"
	FieldStatus        = "status"
	FieldPaymentMethod = "payment_method"
	FieldExpiresAt     = "expires_at"
	FieldPaidAt        = "paid_at"
)

const (
	ProofTableName  = "payment_proofs"
	ProofEntityName = "payment_proof"

	ProofFieldID         = "id"
	ProofFieldBookingID  = "booking_id"
	ProofFieldImageURL   = "image_url"
	ProofFieldUploadedAt = "uploaded_at"
	ProofFieldAcceptedAt = "accepted_at"
	ProofFieldRejectedAt = "rejected_at"
)

const (
	StatusWaitingPayment      = "WAITING_PAYMENT"
	StatusWaitingConfirmation = "WAITING_CONFIRMATION"
	StatusProcessing          = "PROCESSING"
	StatusCompleted           = "COMPLETED"
	StatusCanceled            = "CANCELED"
	StatusExpired             = "EXPIRED"
)

const (
	PaymentMethodManualTransfer = "MANUAL_TRANSFER"
	PaymentMethodGateway        = "PAYMENT_GATEWAY"
)

// TerminalStatuses are the statuses a booking can never leave.
func TerminalStatuses() []string {
	return []string{StatusCompleted, StatusCanceled, StatusExpired}
}

func NonTerminalStatuses() []string {
	return []string{StatusWaitingPayment, StatusWaitingConfirmation, StatusProcessing}
}

func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCanceled || status == StatusExpired
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusWaitingPayment, StatusWaitingConfirmation, StatusProcessing,
		StatusCompleted, StatusCanceled, StatusExpired:
		return true
	default:
		return false
	}
}

// Booking is a reservation of a room for a half-open [CheckInDate, CheckOutDate)
// range. ExpiresAt is set only while the booking waits for a manual payment;
// PaidAt is set once payment is accepted or settled.
type Booking struct {
	ID            string     `db:"id"`
	OrderCode     string     `db:"order_code"`
	UserID        string     `db:"user_id"`
	TenantID      string     `db:"tenant_id"`
	PropertyID    string     `db:"property_id"`
	RoomID        string     `db:"room_id"`
	CheckInDate   time.Time  `db:"check_in_date"`
	CheckOutDate  time.Time  `db:"check_out_date"`
	Nights        int        `db:"nights"`
	Qty           int        `db:"qty"`
	PricePerNight float64    `db:"price_per_night"`
	TotalAmount   float64    `db:"total_amount"`
	Status        string     `db:"status"`
	PaymentMethod string     `db:"payment_method"`
	ExpiresAt     *time.Time `db:"expires_at"`
	PaidAt        *time.Time `db:"paid_at"`
	PropertyName  string     `db:"property_name" table:"properties" column:"name"`
	RoomName      string     `db:"room_name"     table:"rooms"      column:"name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN properties ON properties.id = bookings.property_id JOIN rooms ON rooms.id = bookings.room_id"
}

// Summary carries the denormalized fields a maintenance job needs for its report and
// notification log lines.
type Summary struct {
	ID           string    `db:"id"`
	OrderCode    string    `db:"order_code"`
	UserID       string    `db:"user_id"`
	RoomID       string    `db:"room_id"`
	Status       string    `db:"status"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
}

// PaymentProof is the uploaded transfer receipt for a manual-transfer booking.
// Lifecycle is tied to its booking.
type PaymentProof struct {
	ID         string     `db:"id"`
	BookingID  string     `db:"booking_id"`
	ImageURL   string     `db:"image_url"`
	UploadedAt time.Time  `db:"uploaded_at"`
	AcceptedAt *time.Time `db:"accepted_at"`
	RejectedAt *time.Time `db:"rejected_at"`
	model.Metadata
}
