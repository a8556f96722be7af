// Package cart persists the shopping cart as one encoded list.
//
// Every mutation reads the whole list, changes it and writes it back. Two
// concurrent writers can lose each other's update; the last write wins. The
// store assumes a single writer per cart.
package cart

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/codec"
	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/kvstore"
	"github.com/TemirB/cocktail-shop/internal/pkg/watch"
)

const itemsKey = "cart_items"

type Store struct {
	kv      kvstore.Store
	logger  *zap.Logger
	updates *watch.Value[[]domain.CartItem]
}

func New(ctx context.Context, kv kvstore.Store, logger *zap.Logger) *Store {
	s := &Store{kv: kv, logger: logger}
	s.updates = watch.New(s.Items(ctx))
	return s
}

// Items returns the cart. An unreadable cart is empty.
func (s *Store) Items(ctx context.Context) []domain.CartItem {
	raw, ok, err := s.kv.GetString(ctx, itemsKey)
	if err != nil {
		s.logger.Warn("Can't read cart", zap.Error(err))
		return []domain.CartItem{}
	}
	if !ok {
		return []domain.CartItem{}
	}
	items, err := codec.Decode[[]domain.CartItem](raw)
	if err != nil {
		s.logger.Warn("Cart is corrupt, treating as empty", zap.Error(err))
		return []domain.CartItem{}
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items
}

// Add merges quantity into the item with the same cocktail id or appends a
// new item. Quantities below one count as one.
func (s *Store) Add(ctx context.Context, cocktail domain.Cocktail, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	items := s.Items(ctx)

	i := indexOf(items, cocktail.ID)
	if i >= 0 {
		items[i].Quantity += quantity
	} else {
		items = append(items, domain.CartItem{Cocktail: cocktail, Quantity: quantity})
	}
	s.save(ctx, items)
}

func (s *Store) Remove(ctx context.Context, cocktailID string) {
	items := s.Items(ctx)
	i := indexOf(items, cocktailID)
	if i < 0 {
		return
	}
	s.save(ctx, slices.Delete(items, i, i+1))
}

// SetQuantity overwrites the quantity of an existing item; zero or less removes it.
func (s *Store) SetQuantity(ctx context.Context, cocktailID string, quantity int) {
	items := s.Items(ctx)
	i := indexOf(items, cocktailID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		items = slices.Delete(items, i, i+1)
	} else {
		items[i].Quantity = quantity
	}
	s.save(ctx, items)
}

func (s *Store) Clear(ctx context.Context) {
	if err := s.kv.Remove(ctx, itemsKey); err != nil {
		s.logger.Warn("Can't clear cart", zap.Error(err))
		return
	}
	s.updates.Set([]domain.CartItem{})
}

// Total is Σ price × quantity over the current items.
func (s *Store) Total(ctx context.Context) decimal.Decimal {
	return domain.CartTotal(s.Items(ctx))
}

// Count is the number of units in the cart.
func (s *Store) Count(ctx context.Context) int {
	n := 0
	for _, it := range s.Items(ctx) {
		n += it.Quantity
	}
	return n
}

// Updates yields the current cart and every later version until ctx is done.
func (s *Store) Updates(ctx context.Context) <-chan []domain.CartItem {
	return s.updates.Subscribe(ctx)
}

func (s *Store) save(ctx context.Context, items []domain.CartItem) {
	raw, err := codec.Encode(items)
	if err != nil {
		s.logger.Warn("Can't encode cart", zap.Error(err))
		return
	}
	if err := s.kv.PutString(ctx, itemsKey, raw); err != nil {
		s.logger.Warn("Can't store cart", zap.Int("items", len(items)), zap.Error(err))
		return
	}
	s.updates.Set(items)
}

func indexOf(items []domain.CartItem, cocktailID string) int {
	return slices.IndexFunc(items, func(it domain.CartItem) bool {
		return it.Cocktail.ID == cocktailID
	})
}
