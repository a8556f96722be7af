package statusfeed

import (
	"context"
	"errors"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/config"
)

//go:generate mockgen -source internal/statusfeed/consumer.go -destination=internal/statusfeed/consumer_mock_test.go -package=statusfeed

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func NewReader(cfg config.Kafka) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.Group,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 1 << 20,
		MaxWait:  time.Second,
	})
}

// Consumer handles messages one at a time so status changes of the same
// order are applied in the order they were published.
type Consumer struct {
	handler MessageHandler
	reader  Reader
	logger  *zap.Logger
	backoff time.Duration
}

func NewConsumer(handler MessageHandler, reader Reader, logger *zap.Logger) *Consumer {
	return &Consumer{
		handler: handler,
		reader:  reader,
		logger:  logger,
		backoff: 200 * time.Millisecond,
	}
}

// Start blocks until ctx is done.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.logger.Info("Starting status feed consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
	)

	var pending *kafkago.Message
	for ctx.Err() == nil {
		if pending == nil {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				if isBenignFetchTimeout(err) {
					c.logger.Debug("Fetch timeout (idle)", zap.Error(err))
				} else {
					c.logger.Warn("FetchMessage error, backing off", zap.Error(err))
				}
				sleepWithContext(ctx, c.backoff)
				continue
			}
			pending = &msg
		}

		msg := *pending
		if err := c.handler.Handle(ctx, msg); err != nil && !errors.Is(err, ErrBadMessage) {
			// the same message is retried; later ones wait behind it
			c.logger.Error("Handler failed; message will be retried", zap.Error(err),
				zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
			sleepWithContext(ctx, c.backoff)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warn("Commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, c.backoff)
			continue
		}
		pending = nil
		c.logger.Debug("Message committed",
			zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
