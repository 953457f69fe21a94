package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gauravsoni97/preservespecialmoments/pkg/circuitbreaker"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	breaker *circuitbreaker.Breaker
	log     *zap.Logger
}

// writeBatchTimeout bounds how long a synchronous Publish waits for its batch
// to flush. Publish runs inside the request, one message at a time.
const writeBatchTimeout = 5 * time.Millisecond

// NewKafkaPublisher creates a publisher writing to topic on the given brokers.
func NewKafkaPublisher(topic string, log *zap.Logger, brokers ...string) *KafkaPublisher {
	return newKafkaPublisher(newKafkaWriter(topic, brokers...), log)
}

func newKafkaWriter(topic string, brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              1,
		BatchTimeout:           writeBatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func newKafkaPublisher(w messageWriter, log *zap.Logger) *KafkaPublisher {
	settings := circuitbreaker.DefaultSettings("kafka-events")
	settings.OnStateChange = func(name, from, to string) {
		log.Warn("circuit breaker state changed",
			zap.String("breaker", name),
			zap.String("from", from),
			zap.String("to", to),
		)
	}
	return &KafkaPublisher{
		writer:  w,
		breaker: circuitbreaker.New(settings),
		log:     log,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.SessionID), // session id for ordering
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}

	err = p.breaker.Execute(func() error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
