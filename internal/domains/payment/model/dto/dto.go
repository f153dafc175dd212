package dto

// GatewayNotification is the webhook body the payment gateway posts on every
// transaction status change. Field names follow the gateway's wire format.
type GatewayNotification struct {
	OrderID           string `json:"order_id"           validate:"required"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	StatusCode        string `json:"status_code"        validate:"required"`
	GrossAmount       string `json:"gross_amount"       validate:"required"`
	SignatureKey      string `json:"signature_key"      validate:"required"`
	FraudStatus       string `json:"fraud_status"`
}
