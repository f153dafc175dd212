package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"stayhub/config"
	"stayhub/infras/kafka"
	"stayhub/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingExpired       = "booking.expired"
	EventBookingCanceled      = "booking.canceled"
	EventBookingConfirmed     = "booking.confirmed"
	EventBookingCompleted     = "booking.completed"
	EventPaymentProofReviewed = "booking.payment_proof_reviewed"
	EventPaymentSettled       = "booking.payment_settled"
)

// Event is a user-facing notification published for downstream channels (email,
// push) to render. Keyed by booking so per-booking ordering is preserved.
type Event struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	OrderCode  string    `json:"order_code"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier publishes lifecycle events on a best-effort basis. Delivery problems are
// logged and swallowed; a booking transition never fails because a notification did.
type Notifier interface {
	NotifyBestEffort(ctx context.Context, event Event)
}

type kafkaNotifier struct {
	client kafka.Client
	topic  string
}

func New(config *config.Config, client kafka.Client) Notifier {
	if !config.Kafka.Enable {
		log.Info().Msg("Kafka disabled, notifications will be dropped")

		return &noopNotifier{}
	}

	return &kafkaNotifier{
		client: client,
		topic:  config.Kafka.NotificationTopic,
	}
}

func (n *kafkaNotifier) NotifyBestEffort(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	err := n.client.SendMessages(ctx, n.topic, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("type", event.Type).
			Str("booking_id", event.BookingID).
			Msg("Failed to publish notification event")
	}
}

type noopNotifier struct{}

func (n *noopNotifier) NotifyBestEffort(_ context.Context, event Event) {
	log.Debug().
		Str("type", event.Type).
		Str("booking_id", event.BookingID).
		Msg("Notification dropped, no transport configured")
}
