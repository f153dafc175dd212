package model

import (
	"stayhub/shared/model"
	"time"
)

const (
	TableName  = "gateway_payments"
	EntityName = "gateway_payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldOrderCode     = "order_code"
	FieldTransactionID = "transaction_id"
	FieldGrossAmount   = "gross_amount"
	FieldStatus        = "status"
	FieldRawStatus     = "raw_status"
	FieldSettledAt     = "settled_at"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"
)

// GatewayPayment is the reconciled state of an online payment, one row per order
// code. RawStatus keeps the gateway's own vocabulary for audit.
type GatewayPayment struct {
	ID            string     `db:"id"`
	BookingID     string     `db:"booking_id"`
	OrderCode     string     `db:"order_code"`
	TransactionID string     `db:"transaction_id"`
	GrossAmount   string     `db:"gross_amount"`
	Status        string     `db:"status"`
	RawStatus     string     `db:"raw_status"`
	SettledAt     *time.Time `db:"settled_at"`
	model.Metadata
}
