// Package cache keeps previously seen cocktails available offline.
//
// Each cocktail is stored under two keys of the settings store: the encoded
// record and its write time in unix milliseconds. Entries older than the TTL
// are treated as absent and purged when read; nothing sweeps in the
// background. A bounded, most-recent-first list of viewed ids is kept under a
// separate key.
package cache

import (
	"context"
	"iter"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/TemirB/cocktail-shop/internal/codec"
	"github.com/TemirB/cocktail-shop/internal/config"
	"github.com/TemirB/cocktail-shop/internal/domain"
	"github.com/TemirB/cocktail-shop/internal/kvstore"
	"github.com/TemirB/cocktail-shop/internal/observability"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

const (
	dataPrefix = "cocktail:"
	metaPrefix = "cocktail_ts:"
	recentKey  = "recently_viewed"
)

type source interface {
	Lookup(ctx context.Context, id string) (*domain.Cocktail, error)
}

type entry struct {
	cocktail  domain.Cocktail
	writtenAt time.Time
}

type Cache struct {
	store     kvstore.Store
	ttl       time.Duration
	recentMax int
	hot       *lru.Cache[string, entry]
	now       func() time.Time
	logger    *zap.Logger
	metrics   observability.Metrics
}

type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithMetrics(m observability.Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

func New(store kvstore.Store, cfg config.Cache, logger *zap.Logger, opts ...Option) (*Cache, error) {
	c := &Cache{
		store:     store,
		ttl:       cfg.TTL,
		recentMax: cfg.RecentMax,
		now:       time.Now,
		logger:    logger,
		metrics:   observability.NewNoop(),
	}
	if c.ttl <= 0 {
		c.ttl = 24 * time.Hour
	}
	if c.recentMax <= 0 {
		c.recentMax = 20
	}
	if cfg.HotSize > 0 {
		hot, err := lru.New[string, entry](cfg.HotSize)
		if err != nil {
			return nil, err
		}
		c.hot = hot
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Cache stores the cocktail and moves it to the front of the recently viewed
// list. Failures are logged and dropped.
func (c *Cache) Cache(ctx context.Context, cocktail domain.Cocktail) {
	if !c.put(ctx, cocktail) {
		return
	}
	c.touchRecent(ctx, cocktail.ID)
}

func (c *Cache) put(ctx context.Context, cocktail domain.Cocktail) bool {
	raw, err := codec.Encode(cocktail)
	if err != nil {
		c.logger.Warn("Can't encode cocktail", zap.String("cocktail_id", cocktail.ID), zap.Error(err))
		return false
	}

	now := c.now()
	if err := c.store.PutString(ctx, dataPrefix+cocktail.ID, raw); err != nil {
		c.logger.Warn("Can't store cocktail", zap.String("cocktail_id", cocktail.ID), zap.Error(err))
		return false
	}
	if err := c.store.PutLong(ctx, metaPrefix+cocktail.ID, now.UnixMilli()); err != nil {
		c.logger.Warn("Can't store cocktail timestamp", zap.String("cocktail_id", cocktail.ID), zap.Error(err))
		return false
	}

	if c.hot != nil {
		c.hot.Add(cocktail.ID, entry{cocktail: cocktail, writtenAt: now})
	}
	return true
}

// MarkViewed moves id to the front of the recently viewed list without
// touching the stored record or its timestamp.
func (c *Cache) MarkViewed(ctx context.Context, id string) {
	c.touchRecent(ctx, id)
}

func (c *Cache) touchRecent(ctx context.Context, id string) {
	ids := c.recentIDs(ctx)

	next := make([]string, 0, len(ids)+1)
	next = append(next, id)
	for _, other := range ids {
		if other != id {
			next = append(next, other)
		}
	}
	if len(next) > c.recentMax {
		next = next[:c.recentMax]
	}

	raw, err := codec.Encode(next)
	if err != nil {
		c.logger.Warn("Can't encode recently viewed", zap.Error(err))
		return
	}
	if err := c.store.PutString(ctx, recentKey, raw); err != nil {
		c.logger.Warn("Can't store recently viewed", zap.Error(err))
	}
}

func (c *Cache) recentIDs(ctx context.Context) []string {
	raw, ok, err := c.store.GetString(ctx, recentKey)
	if err != nil {
		c.logger.Warn("Can't read recently viewed", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	ids, err := codec.Decode[[]string](raw)
	if err != nil {
		c.logger.Warn("Recently viewed list is corrupt", zap.Error(err))
		return nil
	}
	return ids
}

// GetCached returns the cocktail if it is stored and younger than the TTL.
// Expired entries are removed before returning false.
func (c *Cache) GetCached(ctx context.Context, id string) (domain.Cocktail, bool) {
	now := c.now()

	if c.hot != nil {
		if e, ok := c.hot.Get(id); ok {
			if c.expired(now, e.writtenAt) {
				c.evict(ctx, id)
				return domain.Cocktail{}, false
			}
			return e.cocktail, true
		}
	}

	raw, ok, err := c.store.GetString(ctx, dataPrefix+id)
	if err != nil {
		c.logger.Warn("Can't read cocktail", zap.String("cocktail_id", id), zap.Error(err))
		return domain.Cocktail{}, false
	}
	if !ok {
		return domain.Cocktail{}, false
	}

	ts, ok, err := c.store.GetLong(ctx, metaPrefix+id)
	if err != nil || !ok {
		// a record without a usable timestamp can never be judged fresh
		c.logger.Warn("Cocktail has no timestamp", zap.String("cocktail_id", id), zap.Error(err))
		c.evict(ctx, id)
		return domain.Cocktail{}, false
	}
	writtenAt := time.UnixMilli(ts)
	if c.expired(now, writtenAt) {
		c.evict(ctx, id)
		return domain.Cocktail{}, false
	}

	cocktail, err := codec.Decode[domain.Cocktail](raw)
	if err != nil {
		c.logger.Warn("Can't decode cocktail", zap.String("cocktail_id", id), zap.Error(err))
		return domain.Cocktail{}, false
	}

	if c.hot != nil {
		c.hot.Add(id, entry{cocktail: cocktail, writtenAt: writtenAt})
	}
	return cocktail, true
}

func (c *Cache) expired(now, writtenAt time.Time) bool {
	return now.Sub(writtenAt) > c.ttl
}

func (c *Cache) evict(ctx context.Context, id string) {
	c.metrics.IncCacheExpired()
	if c.hot != nil {
		c.hot.Remove(id)
	}
	if err := c.store.Remove(ctx, dataPrefix+id); err != nil {
		c.logger.Warn("Can't evict cocktail", zap.String("cocktail_id", id), zap.Error(err))
	}
	if err := c.store.Remove(ctx, metaPrefix+id); err != nil {
		c.logger.Warn("Can't evict cocktail timestamp", zap.String("cocktail_id", id), zap.Error(err))
	}
}

func (c *Cache) ids(ctx context.Context) []string {
	keys, err := c.store.Keys(ctx, dataPrefix)
	if err != nil {
		c.logger.Warn("Can't list cached cocktails", zap.Error(err))
		return nil
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, dataPrefix))
	}
	return ids
}

// GetAll returns every cocktail that is still fresh.
func (c *Cache) GetAll(ctx context.Context) []domain.Cocktail {
	ids := c.ids(ctx)
	out := make([]domain.Cocktail, 0, len(ids))
	for _, id := range ids {
		if cocktail, ok := c.GetCached(ctx, id); ok {
			out = append(out, cocktail)
		}
	}
	return out
}

// RecentlyViewed yields the recently viewed cocktails, most recent first.
// The list is read again every time the sequence is ranged over; ids that no
// longer resolve are skipped.
func (c *Cache) RecentlyViewed(ctx context.Context) iter.Seq[domain.Cocktail] {
	return func(yield func(domain.Cocktail) bool) {
		for _, id := range c.recentIDs(ctx) {
			cocktail, ok := c.GetCached(ctx, id)
			if !ok {
				continue
			}
			if !yield(cocktail) {
				return
			}
		}
	}
}

func (c *Cache) IsCached(ctx context.Context, id string) bool {
	_, ok := c.GetCached(ctx, id)
	return ok
}

// Count is the number of stored records. Stale ones are included until read.
func (c *Cache) Count(ctx context.Context) int {
	return len(c.ids(ctx))
}

func (c *Cache) Clear(ctx context.Context) {
	for _, prefix := range []string{dataPrefix, metaPrefix} {
		keys, err := c.store.Keys(ctx, prefix)
		if err != nil {
			c.logger.Warn("Can't list keys for clear", zap.String("prefix", prefix), zap.Error(err))
			continue
		}
		for _, k := range keys {
			if err := c.store.Remove(ctx, k); err != nil {
				c.logger.Warn("Can't remove key", zap.String("key", k), zap.Error(err))
			}
		}
	}
	if err := c.store.Remove(ctx, recentKey); err != nil {
		c.logger.Warn("Can't remove recently viewed", zap.Error(err))
	}
	if c.hot != nil {
		c.hot.Purge()
	}
}

// Warm loads the recently viewed cocktails into memory. Ids whose records
// expired are fetched again from src; the recently viewed order is kept.
func (c *Cache) Warm(ctx context.Context, src source) {
	for _, id := range c.recentIDs(ctx) {
		if _, ok := c.GetCached(ctx, id); ok {
			continue
		}
		cocktail, err := src.Lookup(ctx, id)
		if err != nil || cocktail == nil {
			c.logger.Debug("Skip warming cocktail", zap.String("cocktail_id", id), zap.Error(err))
			continue
		}
		c.put(ctx, *cocktail)
	}
}
