package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cart-discount-preview/internal/domain/discount"
	"cart-discount-preview/internal/pkg/clock"
	"cart-discount-preview/internal/usecase"

	"golang.org/x/sync/singleflight"
)

const automaticDiscountsKey = "automatic-discounts"

type Lookups interface {
	DiscountCacheHit()
	DiscountCacheMiss()
}

// DiscountCache holds one process-wide automatic discount list for ttl.
// Concurrent misses share a single fetch.
type DiscountCache struct {
	reader  usecase.DiscountReader
	clock   clock.Clock
	ttl     time.Duration
	lookups Lookups
	logger  *slog.Logger

	group singleflight.Group

	mu         sync.RWMutex
	entry      []discount.Descriptor
	fetchedAt  time.Time
	populated  bool
	generation uint64
}

type nopLookups struct{}

func (nopLookups) DiscountCacheHit()  {}
func (nopLookups) DiscountCacheMiss() {}

func NewDiscountCache(reader usecase.DiscountReader, clk clock.Clock, ttl time.Duration, lookups Lookups, logger *slog.Logger) *DiscountCache {
	if lookups == nil {
		lookups = nopLookups{}
	}
	return &DiscountCache{
		reader:  reader,
		clock:   clk,
		ttl:     ttl,
		lookups: lookups,
		logger:  logger,
	}
}

func (c *DiscountCache) Get(ctx context.Context) ([]discount.Descriptor, error) {
	if ds, ok := c.cached(); ok {
		c.lookups.DiscountCacheHit()
		return ds, nil
	}
	c.lookups.DiscountCacheMiss()

	// the flight outlives any single caller; the platform client timeout bounds it
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(automaticDiscountsKey, func() (any, error) {
		// a flight that finished just before this one may have refilled the entry
		if ds, ok := c.cached(); ok {
			return ds, nil
		}

		c.mu.RLock()
		gen := c.generation
		c.mu.RUnlock()

		startedAt := c.clock.Now()
		ds, err := c.reader.ListAutomaticDiscounts(flightCtx)
		if err != nil {
			return nil, err
		}
		c.store(ds, startedAt, gen)
		c.logger.Debug("automatic discounts refreshed", slog.Int("count", len(ds)))
		return ds, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		c.logger.Debug("joined in-flight discount fetch")
	}
	return clone(res.Val.([]discount.Descriptor)), nil
}

// Invalidate drops the entry. A fetch already in flight will not repopulate it.
func (c *DiscountCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
	c.populated = false
	c.generation++
	c.group.Forget(automaticDiscountsKey)
}

func (c *DiscountCache) cached() ([]discount.Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated || c.clock.Now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return clone(c.entry), true
}

func (c *DiscountCache) store(ds []discount.Descriptor, fetchedAt time.Time, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.entry = clone(ds)
	c.fetchedAt = fetchedAt
	c.populated = true
}

func clone(ds []discount.Descriptor) []discount.Descriptor {
	if ds == nil {
		return []discount.Descriptor{}
	}
	out := make([]discount.Descriptor, len(ds))
	copy(out, ds)
	return out
}
