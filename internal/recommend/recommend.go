// Package recommend picks a few cocktails related to the one being viewed.
//
// Four strategies run in order, each adding at most two cocktails, until the
// limit is reached: same category, same first ingredient, the category the
// user favors most, and finally the same alcoholic classification. Every
// strategy shuffles its candidates, so repeated calls vary.
package recommend

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/domain"
)

//go:generate mockgen -source internal/recommend/recommend.go -destination=internal/recommend/recommend_mock_test.go -package=recommend

const (
	DefaultLimit = 3
	perStrategy  = 2
)

type Catalog interface {
	ByCategory(ctx context.Context, category string) ([]domain.Cocktail, error)
	ByIngredient(ctx context.Context, ingredient string) ([]domain.Cocktail, error)
	ByAlcoholic(ctx context.Context, alcoholic string) ([]domain.Cocktail, error)
	Favorites(ctx context.Context) ([]domain.Cocktail, error)
}

type Engine struct {
	catalog Catalog
	logger  *zap.Logger

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

type Option func(*Engine)

// WithSource seeds the shuffling.
func WithSource(src rand.Source) Option {
	return func(e *Engine) { e.rnd = rand.New(src) }
}

func New(catalog Catalog, logger *zap.Logger, opts ...Option) *Engine {
	now := uint64(time.Now().UnixNano())
	e := &Engine{
		catalog: catalog,
		logger:  logger,
		rnd:     rand.New(rand.NewPCG(now, now>>1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type picker struct {
	limit  int
	seen   map[string]bool
	picked []domain.Cocktail
}

func (p *picker) full() bool { return len(p.picked) >= p.limit }

func (p *picker) remaining() int { return p.limit - len(p.picked) }

func (p *picker) take(candidates []domain.Cocktail, max int) {
	for _, c := range candidates {
		if max == 0 || p.full() {
			return
		}
		if c.ID == "" || p.seen[c.ID] {
			continue
		}
		p.seen[c.ID] = true
		p.picked = append(p.picked, c)
		max--
	}
}

// Recommend returns up to limit cocktails related to source, never source
// itself and never the same cocktail twice. A limit of zero or less means
// DefaultLimit. A strategy whose lookup fails is skipped.
func (e *Engine) Recommend(ctx context.Context, source domain.Cocktail, limit int) []domain.Cocktail {
	if limit <= 0 {
		limit = DefaultLimit
	}
	p := &picker{limit: limit, seen: map[string]bool{source.ID: true}}

	if source.Category != "" {
		p.take(e.candidates(ctx, "category", func() ([]domain.Cocktail, error) {
			return e.catalog.ByCategory(ctx, source.Category)
		}), min(perStrategy, p.remaining()))
	}

	if ingredient := source.PrimaryIngredient(); ingredient != "" && !p.full() {
		p.take(e.candidates(ctx, "ingredient", func() ([]domain.Cocktail, error) {
			return e.catalog.ByIngredient(ctx, ingredient)
		}), min(perStrategy, p.remaining()))
	}

	if !p.full() {
		if category := e.favoriteCategory(ctx); category != "" && category != source.Category {
			p.take(e.candidates(ctx, "favorite category", func() ([]domain.Cocktail, error) {
				return e.catalog.ByCategory(ctx, category)
			}), min(perStrategy, p.remaining()))
		}
	}

	if source.Alcoholic != "" && !p.full() {
		p.take(e.candidates(ctx, "alcoholic", func() ([]domain.Cocktail, error) {
			return e.catalog.ByAlcoholic(ctx, source.Alcoholic)
		}), p.remaining())
	}

	return p.picked
}

func (e *Engine) candidates(ctx context.Context, strategy string, fetch func() ([]domain.Cocktail, error)) []domain.Cocktail {
	if err := ctx.Err(); err != nil {
		return nil
	}
	found, err := fetch()
	if err != nil {
		e.logger.Warn("Recommendation strategy failed",
			zap.String("strategy", strategy),
			zap.Error(err),
		)
		return nil
	}
	found = slices.Clone(found)
	e.shuffle(found)
	return found
}

func (e *Engine) shuffle(list []domain.Cocktail) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rnd.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
}

// favoriteCategory is the most common category among favorites. On a tie
// the category that appears first in the favorites list wins.
func (e *Engine) favoriteCategory(ctx context.Context) string {
	favorites, err := e.catalog.Favorites(ctx)
	if err != nil {
		e.logger.Warn("Can't read favorites for recommendations", zap.Error(err))
		return ""
	}
	return modeCategory(favorites)
}

func modeCategory(favorites []domain.Cocktail) string {
	counts := make(map[string]int)
	var order []string
	for _, c := range favorites {
		if c.Category == "" {
			continue
		}
		if counts[c.Category] == 0 {
			order = append(order, c.Category)
		}
		counts[c.Category]++
	}

	best := ""
	for _, category := range order {
		if counts[category] > counts[best] {
			best = category
		}
	}
	return best
}
