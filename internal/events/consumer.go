package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"smarthotel/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type HandlerFunc func(ctx context.Context, event domain.OrderEvent) error

type Consumer struct {
	Reader MessageReader
	Handle HandlerFunc
}

func NewConsumer(reader MessageReader, handle HandlerFunc) *Consumer {
	return &Consumer{
		Reader: reader,
		Handle: handle,
	}
}

// Start reads until ctx is cancelled. Bad messages and handler failures are
// logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[EVENTS] starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Println("[EVENTS] consumer stopped")
				return
			}
			log.Printf("ERROR: reading order event: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("ERROR: decoding order event: %v", err)
			continue
		}
		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	if event.Type == "" {
		return
	}
	if err := c.Handle(ctx, event); err != nil {
		log.Printf("ERROR: handling %s for order %d: %v", event.Type, event.OrderID, err)
	}
}
