// Package statusfeed applies administrative order status changes published
// on a Kafka topic to the local order ledger.
package statusfeed

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/config"
	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/observability"
	"github.com/TemirB/cocktail-shop/internal/pkg/retry"
)

//go:generate mockgen -source internal/statusfeed/handler.go -destination=internal/statusfeed/handler_mock_test.go -package=statusfeed

var (
	// ErrBadMessage marks messages that can never be applied. The consumer
	// commits them so they don't block the partition.
	ErrBadMessage  = errors.New("bad status message")
	ErrUpdate      = errors.New("status update failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// Update is the message payload.
type Update struct {
	OrderID string             `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
}

type Service interface {
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

type Handler struct {
	service     Service
	breaker     brk
	logger      *zap.Logger
	metrics     observability.Metrics
	retryPolicy config.Retry
}

func NewHandler(service Service, breaker brk, retryPolicy config.Retry, logger *zap.Logger, metrics observability.Metrics) *Handler {
	return &Handler{
		service:     service,
		breaker:     breaker,
		logger:      logger,
		metrics:     metrics,
		retryPolicy: retryPolicy,
	}
}

// Handle applies one message. The consumer commits the offset after a nil
// return or an ErrBadMessage.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	start := time.Now()
	err := h.handle(ctx, message)
	h.metrics.ObserveStatusUpdate(float64(time.Since(start).Microseconds())/1000.0, err == nil)
	return err
}

func (h *Handler) handle(ctx context.Context, message kafkago.Message) error {
	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("Circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var update Update
	if err := json.Unmarshal(message.Value, &update); err != nil {
		h.logger.Error("Bad json format",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Success()
		return fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	if update.OrderID == "" || !update.Status.Valid() {
		h.logger.Error("Invalid status update",
			zap.String("order_id", update.OrderID),
			zap.String("status", string(update.Status)),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Success()
		return fmt.Errorf("%w: order_id=%q status=%q", ErrBadMessage, update.OrderID, update.Status)
	}

	err := retry.Do(ctx, h.retryPolicy, func() error {
		err := h.service.UpdateStatus(ctx, update.OrderID, update.Status)
		if errors.Is(err, domain.ErrOrderNotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		h.logger.Info("Status update for unknown order",
			zap.String("order_id", update.OrderID),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Success()
		return fmt.Errorf("%w: %v", ErrBadMessage, err)
	case err != nil:
		h.logger.Error("Status update failed after retries",
			zap.String("order_id", update.OrderID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}

	h.breaker.Success()
	h.logger.Info("Order status updated from feed",
		zap.String("order_id", update.OrderID),
		zap.String("status", string(update.Status)),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
	)
	return nil
}
