// Package favorites keeps the cocktails the user marked, persisted as one
// encoded list in the settings store.
package favorites

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/codec"
	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/kvstore"
	"github.com/TemirB/cocktail-shop/internal/pkg/watch"
)

const listKey = "favorites"

type Store struct {
	kv      kvstore.Store
	logger  *zap.Logger
	updates *watch.Value[[]domain.Cocktail]
}

func New(ctx context.Context, kv kvstore.Store, logger *zap.Logger) *Store {
	s := &Store{kv: kv, logger: logger}
	s.updates = watch.New(s.List(ctx))
	return s
}

// List returns favorites in the order they were added.
func (s *Store) List(ctx context.Context) []domain.Cocktail {
	raw, ok, err := s.kv.GetString(ctx, listKey)
	if err != nil {
		s.logger.Warn("Can't read favorites", zap.Error(err))
		return []domain.Cocktail{}
	}
	if !ok {
		return []domain.Cocktail{}
	}
	list, err := codec.Decode[[]domain.Cocktail](raw)
	if err != nil || list == nil {
		s.logger.Warn("Favorites are corrupt, treating as empty", zap.Error(err))
		return []domain.Cocktail{}
	}
	return list
}

// Add stores the cocktail; an existing favorite is replaced in place.
func (s *Store) Add(ctx context.Context, cocktail domain.Cocktail) {
	list := s.List(ctx)
	if i := indexOf(list, cocktail.ID); i >= 0 {
		list[i] = cocktail
	} else {
		list = append(list, cocktail)
	}
	s.save(ctx, list)
}

func (s *Store) Remove(ctx context.Context, id string) {
	list := s.List(ctx)
	i := indexOf(list, id)
	if i < 0 {
		return
	}
	s.save(ctx, slices.Delete(list, i, i+1))
}

// Toggle adds or removes the cocktail and reports whether it is now a favorite.
func (s *Store) Toggle(ctx context.Context, cocktail domain.Cocktail) bool {
	if s.IsFavorite(ctx, cocktail.ID) {
		s.Remove(ctx, cocktail.ID)
		return false
	}
	s.Add(ctx, cocktail)
	return true
}

func (s *Store) IsFavorite(ctx context.Context, id string) bool {
	return indexOf(s.List(ctx), id) >= 0
}

// Categories lists the category of every favorite in favorites order.
// Favorites without a category are skipped.
func (s *Store) Categories(ctx context.Context) []string {
	var out []string
	for _, c := range s.List(ctx) {
		if c.Category != "" {
			out = append(out, c.Category)
		}
	}
	return out
}

func (s *Store) Updates(ctx context.Context) <-chan []domain.Cocktail {
	return s.updates.Subscribe(ctx)
}

func (s *Store) save(ctx context.Context, list []domain.Cocktail) {
	raw, err := codec.Encode(list)
	if err != nil {
		s.logger.Warn("Can't encode favorites", zap.Error(err))
		return
	}
	if err := s.kv.PutString(ctx, listKey, raw); err != nil {
		s.logger.Warn("Can't store favorites", zap.Error(err))
		return
	}
	s.updates.Set(list)
}

func indexOf(list []domain.Cocktail, id string) int {
	return slices.IndexFunc(list, func(c domain.Cocktail) bool { return c.ID == id })
}
