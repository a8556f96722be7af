package statusfeed

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/TemirB/cocktail-shop/internal/config"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher sends status updates, keyed by order id so every update of one
// order lands on the same partition.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return &Publisher{writer: &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}}
}

func (p *Publisher) Publish(ctx context.Context, update Update) error {
	if update.OrderID == "" || !update.Status.Valid() {
		return fmt.Errorf("%w: order_id=%q status=%q", ErrBadMessage, update.OrderID, update.Status)
	}
	value, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode status update: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafkago.Message{Key: []byte(update.OrderID), Value: value}); err != nil {
		return fmt.Errorf("publish status update: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
