package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// Publisher is the change-feed sink consumed by the reservation ledger.
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent)
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
	closed bool
	mu     sync.Mutex
}

// NewKafkaPublisher builds a producer hashing by reservation id so events for
// one reservation stay ordered within a partition.
func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka producer error", "message", msg, "args", args)
		}),
	}
	return &kafkaPublisher{writer: writer, log: log}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event ChangeEvent) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to encode change event", "type", event.Type, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ReservationID),
		Value: value,
	})
	if err != nil {
		// Fire-and-forget: log and move on, the store remains authoritative.
		p.log.Warn("Failed to publish change event",
			"type", event.Type,
			"reservation_id", event.ReservationID,
			"error", err,
		)
	}
}

func (p *kafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher drops all events. Used when the feed is disabled and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ChangeEvent) {}
func (NopPublisher) Close() error                         { return nil }
