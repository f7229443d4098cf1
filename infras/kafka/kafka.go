package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"mallbook/config"
	"mallbook/infras/otel"
	"mallbook/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	dialTimeout  = 10 * time.Second
	fetchBackoff = 2 * time.Second

	headerContentType = "content-type"
)

// Message is published as JSON. Messages sharing a Key land on the same partition.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m *Message) toKafka() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	headers := []kafkaGo.Header{{Key: headerContentType, Value: []byte(constant.ContentTypeJSON)}}
	for key, val := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(val)})
	}

	return kafkaGo.Message{Key: []byte(m.Key), Value: value, Headers: headers}, nil
}

// DecodeKafkaMessage unmarshals the JSON value of msg into T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (key string, value T, err error) {
	if err = json.Unmarshal(msg.Value, &value); err != nil {
		return "", value, fmt.Errorf("failed to decode message %q: %w", string(msg.Key), err)
	}

	return string(msg.Key), value, nil
}

// Header returns the value of a message header, or "" when absent.
func Header(msg kafkaGo.Message, key string) string {
	for _, header := range msg.Headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

// Handler processes one message. The offset is committed whatever it returns.
type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler)
}

type client struct {
	config    *config.Config
	otel      otel.Otel
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

func New(config *config.Config, otel otel.Otel) Client {
	dialer := &kafkaGo.Dialer{Timeout: dialTimeout, DualStack: true}
	transport := &kafkaGo.Transport{DialTimeout: dialTimeout}

	if config.Kafka.SASL.Username != "" {
		mechanism := plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}

		dialer.SASLMechanism = mechanism
		transport.SASL = mechanism
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Bool("sasl", dialer.SASLMechanism != nil).Msg("Kafka client initialized")

	return &client{
		config:    config,
		otel:      otel,
		dialer:    dialer,
		transport: transport,
		writers:   make(map[string]*kafkaGo.Writer),
	}
}

// writer returns the topic's writer. Writers are synchronous and live as long as the process.
func (k *client) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	if writer, ok := k.writers[topic]; ok {
		return writer
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		AllowAutoTopicCreation: true,
	}
	k.writers[topic] = writer

	return writer
}

func (k *client) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"messaging.destination": topic,
		"messaging.batch_size":  len(messages),
	})

	batch := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.toKafka()
		if err != nil {
			return err
		}

		batch = append(batch, msg)
	}

	if err = k.writer(topic).WriteMessages(ctx, batch...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to publish to Kafka")

		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("Published to Kafka")

	return nil
}

// Consume reads the topic in order until ctx is done. Fetch errors back off and retry.
func (k *client) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) {
	if topic == "" {
		log.Error().Msg("Kafka consumer needs a topic")

		return
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     cmp.Or(consumerGroup, k.config.Kafka.ConsumerGroup),
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to close Kafka reader")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Kafka consumer stopped")

				return
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to fetch from Kafka")

			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchBackoff):
			}

			continue
		}

		k.dispatch(ctx, reader, msg, handler)
	}
}

func (k *client) dispatch(ctx context.Context, reader *kafkaGo.Reader, msg kafkaGo.Message, handler Handler) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Consume")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"messaging.destination": msg.Topic,
		"messaging.partition":   msg.Partition,
		"messaging.offset":      msg.Offset,
	})

	if err := handler(ctx, msg); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", msg.Topic).Int64("offset", msg.Offset).Msg("Kafka handler failed, message skipped")
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error().Err(err).Str("topic", msg.Topic).Int64("offset", msg.Offset).Msg("Failed to commit Kafka offset")
	}
}
