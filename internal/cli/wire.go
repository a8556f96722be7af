package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/application/service"
	"github.com/TemirB/cocktail-shop/internal/cache"
	"github.com/TemirB/cocktail-shop/internal/cart"
	"github.com/TemirB/cocktail-shop/internal/catalog"
	"github.com/TemirB/cocktail-shop/internal/cocktailapi"
	"github.com/TemirB/cocktail-shop/internal/config"
	"github.com/TemirB/cocktail-shop/internal/favorites"
	"github.com/TemirB/cocktail-shop/internal/kvstore"
	"github.com/TemirB/cocktail-shop/internal/observability"
	"github.com/TemirB/cocktail-shop/internal/orders"
	"github.com/TemirB/cocktail-shop/internal/pkg/circuit"
	"github.com/TemirB/cocktail-shop/internal/recommend"
	"github.com/TemirB/cocktail-shop/internal/session"
)

// app is everything a command may need, built once per invocation.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *observability.Inmem

	breaker   *circuit.Breaker
	api       *cocktailapi.Client
	cache     *cache.Cache
	catalog   *catalog.Repository
	orders    *orders.Store
	favorites *favorites.Store
	session   *session.Store
	shop      *service.Shop

	closers []func()
}

func build(ctx context.Context, cfg config.Config, logger *zap.Logger, metrics *observability.Inmem) (*app, error) {
	a := &app{cfg: cfg, logger: logger, metrics: metrics}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.cache, err = cache.New(store, cfg.Cache, logger, cache.WithMetrics(metrics))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.breaker = circuit.New(cfg.Breaker)
	a.api = cocktailapi.New(cfg.API, a.breaker, cfg.Retry, logger)

	a.favorites = favorites.New(ctx, store, logger)
	a.catalog = catalog.NewRepository(a.cache, a.api, a.favorites, logger, metrics)

	carts := cart.New(ctx, store, logger)
	a.orders = orders.New(ctx, store, logger)
	recommender := recommend.New(a.catalog, logger)
	a.session = session.New(store, logger)

	a.shop = service.NewShop(a.catalog, carts, a.orders, a.favorites, recommender, a.cache, logger)
	return a, nil
}

func (a *app) openStore(ctx context.Context) (kvstore.Store, error) {
	switch a.cfg.KV.Backend {
	case config.BackendMemory:
		return kvstore.NewMemory(), nil
	case config.BackendFile:
		return kvstore.NewFile(a.cfg.KV.Path)
	case config.BackendRedis:
		client, err := kvstore.DialRedis(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return kvstore.NewRedis(client, a.cfg.KV.Namespace), nil
	case config.BackendPostgres:
		pool, err := kvstore.Connect(ctx, a.cfg.DSN(), a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		pg := kvstore.NewPostgres(pool, a.cfg.Pg.Table)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("kvstore: ensure schema: %w", err)
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown KV backend %q", a.cfg.KV.Backend)
	}
}

// Close releases backend connections and flushes the logger.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	_ = a.logger.Sync()
}
