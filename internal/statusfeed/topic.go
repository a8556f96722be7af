package statusfeed

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/config"
)

// EnsureTopic creates the status topic with a single partition if it is
// missing. A single partition keeps every update in publish order.
func EnsureTopic(ctx context.Context, cfg config.Kafka, log *zap.Logger) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return fmt.Errorf("empty topic")
	}

	dialer := &kafkago.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	if parts, err := conn.ReadPartitions(cfg.Topic); err == nil && len(parts) > 0 {
		log.Debug("Kafka topic exists", zap.String("topic", cfg.Topic), zap.Int("partitions", len(parts)))
		return nil
	}

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("get controller: %w", err)
	}
	ctrlAddr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	ctrlConn, err := dialer.DialContext(ctx, "tcp", ctrlAddr)
	if err != nil {
		return fmt.Errorf("dial controller %s: %w", ctrlAddr, err)
	}
	defer ctrlConn.Close()

	log.Info("Creating kafka topic", zap.String("topic", cfg.Topic))
	err = ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "exists") {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}
