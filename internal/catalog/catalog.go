// Package catalog is the cocktail repository: the offline cache first, the
// remote API on a miss, and the cache refreshed with whatever the API returned.
package catalog

import (
	"context"
	"iter"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/observability"
)

//go:generate mockgen -source internal/catalog/catalog.go -destination=internal/catalog/catalog_mock_test.go -package=catalog

type Cache interface {
	Cache(ctx context.Context, cocktail domain.Cocktail)
	MarkViewed(ctx context.Context, id string)
	GetCached(ctx context.Context, id string) (domain.Cocktail, bool)
	GetAll(ctx context.Context) []domain.Cocktail
	RecentlyViewed(ctx context.Context) iter.Seq[domain.Cocktail]
}

type API interface {
	Lookup(ctx context.Context, id string) (*domain.Cocktail, error)
	Random(ctx context.Context) (*domain.Cocktail, error)
	Search(ctx context.Context, name string) ([]domain.Cocktail, error)
	ByCategory(ctx context.Context, category string) ([]domain.Cocktail, error)
	ByIngredient(ctx context.Context, ingredient string) ([]domain.Cocktail, error)
	ByAlcoholic(ctx context.Context, alcoholic string) ([]domain.Cocktail, error)
	Categories(ctx context.Context) ([]string, error)
	Ingredients(ctx context.Context) ([]string, error)
	Glasses(ctx context.Context) ([]string, error)
}

type Favorites interface {
	List(ctx context.Context) []domain.Cocktail
}

type Repository struct {
	cache     Cache
	api       API
	favorites Favorites
	logger    *zap.Logger
	metrics   observability.Metrics
}

func NewRepository(cache Cache, api API, favorites Favorites, logger *zap.Logger, metrics observability.Metrics) *Repository {
	return &Repository{
		cache:     cache,
		api:       api,
		favorites: favorites,
		logger:    logger,
		metrics:   metrics,
	}
}

func (r *Repository) Cocktail(ctx context.Context, id string) (*domain.Cocktail, error) {
	c, _, err := r.CocktailWithStats(ctx, id)
	return c, err
}

// CocktailWithStats resolves one cocktail and reports where it came from.
// Every successful lookup counts as a view.
func (r *Repository) CocktailWithStats(ctx context.Context, id string) (*domain.Cocktail, LookupStats, error) {
	var st LookupStats

	tCacheStart := time.Now()
	if cocktail, ok := r.cache.GetCached(ctx, id); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		r.metrics.IncCacheHit()
		r.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)

		r.cache.MarkViewed(ctx, id)
		r.logger.Debug("Cocktail fetched from cache",
			zap.String("cocktail_id", id),
			zap.Float64("cache_ms", st.CacheMs),
		)
		return &cocktail, st, nil
	}

	r.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tAPIStart := time.Now()
	cocktail, err := r.api.Lookup(ctx, id)
	if err != nil {
		r.logger.Warn("Can't fetch cocktail",
			zap.String("cocktail_id", id),
			zap.Error(err),
			zap.Float64("cache_ms", st.CacheMs),
		)
		return nil, st, err
	}

	st.Source = SourceAPI
	st.APIMs = convertToMs(tAPIStart)

	r.cache.Cache(ctx, *cocktail)

	r.metrics.ObserveLookup(string(st.Source), st.CacheMs, st.APIMs)
	r.logger.Info("Cocktail fetched from API",
		zap.String("cocktail_id", id),
		zap.Float64("cache_ms", st.CacheMs),
		zap.Float64("api_ms", st.APIMs),
	)
	return cocktail, st, nil
}

func (r *Repository) Random(ctx context.Context) (*domain.Cocktail, error) {
	cocktail, err := r.api.Random(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.Cache(ctx, *cocktail)
	return cocktail, nil
}

// Search asks the API and falls back to matching names among cached
// cocktails when the API can't be reached.
func (r *Repository) Search(ctx context.Context, name string) ([]domain.Cocktail, error) {
	found, err := r.api.Search(ctx, name)
	if err == nil {
		return found, nil
	}

	offline := r.searchCached(ctx, name)
	if len(offline) == 0 {
		return nil, err
	}
	r.logger.Info("Search served from cache",
		zap.String("query", name),
		zap.Int("results", len(offline)),
		zap.NamedError("api_error", err),
	)
	return offline, nil
}

func (r *Repository) searchCached(ctx context.Context, name string) []domain.Cocktail {
	needle := strings.ToLower(strings.TrimSpace(name))
	var out []domain.Cocktail
	for _, c := range r.cache.GetAll(ctx) {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Cocktail) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (r *Repository) ByCategory(ctx context.Context, category string) ([]domain.Cocktail, error) {
	return r.api.ByCategory(ctx, category)
}

func (r *Repository) ByIngredient(ctx context.Context, ingredient string) ([]domain.Cocktail, error) {
	return r.api.ByIngredient(ctx, ingredient)
}

func (r *Repository) ByAlcoholic(ctx context.Context, alcoholic string) ([]domain.Cocktail, error) {
	return r.api.ByAlcoholic(ctx, alcoholic)
}

func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	return r.api.Categories(ctx)
}

func (r *Repository) Ingredients(ctx context.Context) ([]string, error) {
	return r.api.Ingredients(ctx)
}

func (r *Repository) Glasses(ctx context.Context) ([]string, error) {
	return r.api.Glasses(ctx)
}

func (r *Repository) Favorites(ctx context.Context) ([]domain.Cocktail, error) {
	return r.favorites.List(ctx), nil
}

func (r *Repository) RecentlyViewed(ctx context.Context) []domain.Cocktail {
	return slices.Collect(r.cache.RecentlyViewed(ctx))
}
