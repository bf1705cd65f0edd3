package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"smarthotel/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher writes order events keyed by order id, so every event of
// one order lands on the same partition.
type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

var _ Publisher = (*KafkaPublisher)(nil)

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

func (NopPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	log.Printf("[EVENTS] no broker configured, %s for order %d not published", event.Type, event.OrderID)
	return nil
}
