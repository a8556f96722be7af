// Package service composes the local stores into the shop's use cases:
// browsing with recommendations, cart handling, checkout and order history.
package service

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/catalog"
	"github.com/TemirB/cocktail-shop/internal/domain"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Catalog interface {
	CocktailWithStats(ctx context.Context, id string) (*domain.Cocktail, catalog.LookupStats, error)
	Search(ctx context.Context, name string) ([]domain.Cocktail, error)
	RecentlyViewed(ctx context.Context) []domain.Cocktail
}

type Cart interface {
	Items(ctx context.Context) []domain.CartItem
	Add(ctx context.Context, cocktail domain.Cocktail, quantity int)
	Remove(ctx context.Context, cocktailID string)
	SetQuantity(ctx context.Context, cocktailID string, quantity int)
	Clear(ctx context.Context)
	Updates(ctx context.Context) <-chan []domain.CartItem
}

type Orders interface {
	Place(ctx context.Context, items []domain.CartItem, total decimal.Decimal) (domain.Order, error)
	Cancel(ctx context.Context, id string) error
	History() []domain.Order
	ByID(id string) (domain.Order, bool)
}

type Favorites interface {
	List(ctx context.Context) []domain.Cocktail
	Toggle(ctx context.Context, cocktail domain.Cocktail) bool
}

type Recommender interface {
	Recommend(ctx context.Context, source domain.Cocktail, limit int) []domain.Cocktail
}

type Cache interface {
	Count(ctx context.Context) int
	Clear(ctx context.Context)
	RecentlyViewed(ctx context.Context) iter.Seq[domain.Cocktail]
}

// CartView is the cart together with the numbers derived from it.
type CartView struct {
	Items []domain.CartItem `json:"items"`
	Count int               `json:"count"`
	Total decimal.Decimal   `json:"total"`
}

// NewCartView derives the unit count and total from items.
func NewCartView(items []domain.CartItem) CartView {
	v := CartView{Items: items, Total: domain.CartTotal(items)}
	for _, it := range items {
		v.Count += it.Quantity
	}
	return v
}

type CacheStats struct {
	Count  int      `json:"count"`
	Recent []string `json:"recently_viewed"`
}

type Shop struct {
	catalog     Catalog
	cart        Cart
	orders      Orders
	favorites   Favorites
	recommender Recommender
	cache       Cache
	logger      *zap.Logger
}

func NewShop(catalog Catalog, cart Cart, orders Orders, favorites Favorites, recommender Recommender, cache Cache, logger *zap.Logger) *Shop {
	return &Shop{
		catalog:     catalog,
		cart:        cart,
		orders:      orders,
		favorites:   favorites,
		recommender: recommender,
		cache:       cache,
		logger:      logger,
	}
}

func (s *Shop) CocktailWithStats(ctx context.Context, id string) (*domain.Cocktail, catalog.LookupStats, error) {
	return s.catalog.CocktailWithStats(ctx, id)
}

func (s *Shop) Search(ctx context.Context, name string) ([]domain.Cocktail, error) {
	return s.catalog.Search(ctx, name)
}

func (s *Shop) RecentlyViewed(ctx context.Context) []domain.Cocktail {
	return s.catalog.RecentlyViewed(ctx)
}

func (s *Shop) Recommendations(ctx context.Context, id string, limit int) ([]domain.Cocktail, error) {
	source, _, err := s.catalog.CocktailWithStats(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.recommender.Recommend(ctx, *source, limit), nil
}

func (s *Shop) Favorites(ctx context.Context) []domain.Cocktail {
	return s.favorites.List(ctx)
}

// ToggleFavorite reports whether the cocktail is a favorite afterwards.
func (s *Shop) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	cocktail, _, err := s.catalog.CocktailWithStats(ctx, id)
	if err != nil {
		return false, err
	}
	return s.favorites.Toggle(ctx, *cocktail), nil
}

func (s *Shop) Cart(ctx context.Context) CartView {
	return NewCartView(s.cart.Items(ctx))
}

func (s *Shop) AddToCart(ctx context.Context, id string, quantity int) (CartView, error) {
	cocktail, _, err := s.catalog.CocktailWithStats(ctx, id)
	if err != nil {
		return CartView{}, err
	}
	s.cart.Add(ctx, *cocktail, quantity)
	return s.Cart(ctx), nil
}

func (s *Shop) SetCartQuantity(ctx context.Context, id string, quantity int) CartView {
	s.cart.SetQuantity(ctx, id, quantity)
	return s.Cart(ctx)
}

func (s *Shop) RemoveFromCart(ctx context.Context, id string) CartView {
	s.cart.Remove(ctx, id)
	return s.Cart(ctx)
}

func (s *Shop) ClearCart(ctx context.Context) {
	s.cart.Clear(ctx)
}

func (s *Shop) CartUpdates(ctx context.Context) <-chan []domain.CartItem {
	return s.cart.Updates(ctx)
}

// Checkout places an order for the cart contents and empties the cart.
// The cart is left untouched if the order could not be placed.
func (s *Shop) Checkout(ctx context.Context) (domain.Order, error) {
	items := s.cart.Items(ctx)
	if len(items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	order, err := s.orders.Place(ctx, items, domain.CartTotal(items))
	if err != nil {
		s.logger.Error("Checkout failed", zap.Int("items", len(items)), zap.Error(err))
		return domain.Order{}, fmt.Errorf("checkout: %w", err)
	}
	s.cart.Clear(ctx)
	return order, nil
}

// Orders returns the history, newest first.
func (s *Shop) Orders() []domain.Order {
	history := s.orders.History()
	slices.Reverse(history)
	return history
}

func (s *Shop) Order(id string) (domain.Order, error) {
	order, ok := s.orders.ByID(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("%s: %w", id, domain.ErrOrderNotFound)
	}
	return order, nil
}

func (s *Shop) CancelOrder(ctx context.Context, id string) (domain.Order, error) {
	if err := s.orders.Cancel(ctx, id); err != nil {
		return domain.Order{}, err
	}
	return s.Order(id)
}

func (s *Shop) CacheStats(ctx context.Context) CacheStats {
	st := CacheStats{Count: s.cache.Count(ctx), Recent: []string{}}
	for c := range s.cache.RecentlyViewed(ctx) {
		st.Recent = append(st.Recent, c.ID)
	}
	return st
}

func (s *Shop) ClearCache(ctx context.Context) {
	s.cache.Clear(ctx)
	s.logger.Info("Cocktail cache cleared")
}
