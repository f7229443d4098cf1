package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mallbook/config"
	"mallbook/infras/kafka"
	"mallbook/internal/domains/booking/model"
	"mallbook/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	TypeCreated       = "booking.created"
	TypeStatusChanged = "booking.status_changed"

	// HeaderType lets consumers route without decoding the payload.
	HeaderType = "event-type"
)

// Event is the payload written to the booking topic, keyed by booking id.
type Event struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	UserID         string    `json:"user_id"`
	ServiceID      string    `json:"service_id"`
	StoreID        string    `json:"store_id"`
	BookingDate    string    `json:"booking_date"`
	StartTime      string    `json:"start_time"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	ChangedBy      string    `json:"changed_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newEvent(eventType string, booking model.Booking, changedBy string) Event {
	return Event{
		Type:        eventType,
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ServiceID:   booking.ServiceID,
		StoreID:     booking.StoreID,
		BookingDate: booking.BookingDate.Format(time.DateOnly),
		StartTime:   booking.StartTime,
		Status:      booking.Status.String(),
		ChangedBy:   changedBy,
		OccurredAt:  timezone.Now(),
	}
}

type Publisher interface {
	Created(ctx context.Context, booking model.Booking) error
	StatusChanged(ctx context.Context, booking model.Booking, previous model.Status, changedBy string) error
}

type publisherImpl struct {
	client kafka.Client
	topic  string
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Booking.EventTopic,
	}
}

func (p *publisherImpl) Created(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, newEvent(TypeCreated, booking, booking.UserID))
}

func (p *publisherImpl) StatusChanged(ctx context.Context, booking model.Booking, previous model.Status, changedBy string) error {
	evt := newEvent(TypeStatusChanged, booking, changedBy)
	evt.PreviousStatus = previous.String()

	return p.publish(ctx, evt)
}

func (p *publisherImpl) publish(ctx context.Context, evt Event) error {
	message := kafka.Message{
		Key:     evt.BookingID,
		Value:   evt,
		Headers: map[string]string{HeaderType: evt.Type},
	}

	if err := p.client.SendMessages(ctx, p.topic, message); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.Type, err)
	}

	return nil
}

// Listener records booking events from the topic in the application log.
type Listener struct {
	client kafka.Client
	cfg    *config.Config
}

func NewListener(client kafka.Client, cfg *config.Config) *Listener {
	return &Listener{client: client, cfg: cfg}
}

// Listen blocks until ctx is done.
func (l *Listener) Listen(ctx context.Context) {
	log.Info().Str("topic", l.cfg.Booking.EventTopic).Msg("Listening for booking events")

	l.client.Consume(ctx, l.cfg.Kafka.ConsumerGroup, l.cfg.Booking.EventTopic, l.Handle)
}

// Handle logs one booking event. Undecodable payloads are reported and skipped.
func (l *Listener) Handle(_ context.Context, msg kafkaGo.Message) error {
	key, evt, err := kafka.DecodeKafkaMessage[Event](msg)
	if err != nil {
		return fmt.Errorf("failed to decode %s event: %w", kafka.Header(msg, HeaderType), err)
	}

	log.Info().
		Str("key", key).
		Str("type", evt.Type).
		Str("status", evt.Status).
		Str("previousStatus", evt.PreviousStatus).
		Str("storeID", evt.StoreID).
		Str("changedBy", evt.ChangedBy).
		Msg("booking event received")

	return nil
}
