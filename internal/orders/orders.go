// Package orders is the local order ledger. Orders are appended at checkout
// and afterwards only their status changes, unless the user deletes them.
//
// The persisted list is decoded once at construction; reads are served from
// that in-memory copy.
package orders

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/codec"
	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/kvstore"
	"github.com/TemirB/cocktail-shop/internal/pkg/watch"
)

const historyKey = "order_history"

type Store struct {
	kv     kvstore.Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	mu      sync.Mutex
	orders  []domain.Order
	updates *watch.Value[[]domain.Order]
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces the order id generator.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

const maxIDAttempts = 5

func newOrderID() string {
	return "ORD-" + uuid.NewString()
}

func New(ctx context.Context, kv kvstore.Store, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		newID:  newOrderID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.orders = s.load(ctx)
	s.updates = watch.New(cloneOrders(s.orders))
	return s
}

func (s *Store) load(ctx context.Context) []domain.Order {
	raw, ok, err := s.kv.GetString(ctx, historyKey)
	if err != nil {
		s.logger.Warn("Can't read order history", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	orders, err := codec.Decode[[]domain.Order](raw)
	if err != nil {
		s.logger.Warn("Order history is corrupt, starting empty", zap.Error(err))
		return nil
	}
	return orders
}

// Place records a new order from the given cart items. Items are copied, so
// later price changes never reach a placed order.
func (s *Store) Place(ctx context.Context, items []domain.CartItem, total decimal.Decimal) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		ID:     id,
		Date:   s.now(),
		Items:  domain.SnapshotItems(items),
		Total:  total,
		Status: domain.StatusProcessing,
	}

	next := append(slices.Clone(s.orders), order)
	if err := s.commit(ctx, next); err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return cloneOrder(order), nil
}

// Cancel moves a Pending or Processing order to Cancelled.
func (s *Store) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("cancel %s: %w", id, domain.ErrOrderNotFound)
	}
	if !s.orders[i].Status.Cancellable() {
		return fmt.Errorf("cancel %s in status %s: %w", id, s.orders[i].Status, domain.ErrCancelNotAllowed)
	}
	return s.setStatus(ctx, i, domain.StatusCancelled)
}

// UpdateStatus overwrites the status without checking transitions.
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%q: %w", status, domain.ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("update %s: %w", id, domain.ErrOrderNotFound)
	}
	return s.setStatus(ctx, i, status)
}

func (s *Store) setStatus(ctx context.Context, i int, status domain.OrderStatus) error {
	next := slices.Clone(s.orders)
	prev := next[i].Status
	next[i].Status = status
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("Order status changed",
		zap.String("order_id", next[i].ID),
		zap.String("from", string(prev)),
		zap.String("to", string(status)),
	)
	return nil
}

// Delete drops an order from the history.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, domain.ErrOrderNotFound)
	}
	return s.commit(ctx, slices.Delete(slices.Clone(s.orders), i, i+1))
}

func (s *Store) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, historyKey); err != nil {
		return fmt.Errorf("clear order history: %w", err)
	}
	s.orders = nil
	s.updates.Set([]domain.Order{})
	return nil
}

// History returns every order in placement order.
func (s *Store) History() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.orders)
}

func (s *Store) ByID(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return domain.Order{}, false
	}
	return cloneOrder(s.orders[i]), true
}

// Updates yields the history now and after every change until ctx is done.
func (s *Store) Updates(ctx context.Context) <-chan []domain.Order {
	return s.updates.Subscribe(ctx)
}

// commit persists next and only then makes it the current history.
// Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []domain.Order) error {
	raw, err := codec.Encode(next)
	if err != nil {
		return fmt.Errorf("encode order history: %w", err)
	}
	if err := s.kv.PutString(ctx, historyKey, raw); err != nil {
		s.logger.Error("Can't persist order history", zap.Error(err))
		return fmt.Errorf("persist order history: %w", err)
	}
	s.orders = next
	s.updates.Set(cloneOrders(next))
	return nil
}

// uniqueID must be called with mu held.
func (s *Store) uniqueID() (string, error) {
	var id string
	for range maxIDAttempts {
		id = s.newID()
		if s.index(id) < 0 {
			return id, nil
		}
		s.logger.Warn("Order id already taken", zap.String("order_id", id))
	}
	return "", fmt.Errorf("place order %s: %w", id, domain.ErrDuplicateOrder)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.orders, func(o domain.Order) bool { return o.ID == id })
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	return o
}

func cloneOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, cloneOrder(o))
	}
	return out
}
