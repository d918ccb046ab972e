package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

const cacheVersionKey = "catalog:products:version"

// ListingCache caches product listing pages in Redis. Every write to the
// product table bumps a version counter, which is part of every cache key, so
// stale pages simply stop being addressed and expire through their TTL.
// All cache failures degrade to a miss; the cache never fails a request.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewListingCache returns a cache over the given client. A nil client yields
// a disabled cache that misses on every lookup.
func NewListingCache(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *ListingCache {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ListingCache{rdb: rdb, ttl: ttl, log: log}
}

// GetPage returns the cached page for the query, if any.
func (c *ListingCache) GetPage(ctx context.Context, q ProductQuery) (*ProductPage, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	key, err := c.key(ctx, q)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.DebugContext(ctx, "listing cache read failed", "error", err)
		}
		return nil, false
	}

	var page ProductPage
	if err := json.Unmarshal(raw, &page); err != nil {
		c.log.DebugContext(ctx, "listing cache payload corrupt", "error", err)
		return nil, false
	}
	return &page, true
}

// SetPage stores a page under the current cache version.
func (c *ListingCache) SetPage(ctx context.Context, q ProductQuery, page *ProductPage) {
	if c == nil || c.rdb == nil || page == nil {
		return
	}

	key, err := c.key(ctx, q)
	if err != nil {
		return
	}

	raw, err := json.Marshal(page)
	if err != nil {
		c.log.DebugContext(ctx, "listing cache encode failed", "error", err)
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.DebugContext(ctx, "listing cache write failed", "error", err)
	}
}

// Invalidate bumps the cache version, orphaning all cached pages.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, cacheVersionKey).Err(); err != nil {
		c.log.DebugContext(ctx, "listing cache invalidation failed", "error", err)
	}
}

func (c *ListingCache) key(ctx context.Context, q ProductQuery) (string, error) {
	version, err := c.rdb.Get(ctx, cacheVersionKey).Int64()
	if err != nil && err != redis.Nil {
		c.log.DebugContext(ctx, "listing cache version lookup failed", "error", err)
		return "", err
	}

	var categoryID, distributorID int64
	if q.CategoryID != nil {
		categoryID = *q.CategoryID
	}
	if q.DistributorID != nil {
		distributorID = *q.DistributorID
	}

	return fmt.Sprintf("catalog:products:%d:%d:%d:%d:%d:%s", version,
		q.Offset, q.Limit, categoryID, distributorID, selectionKey(q.Selection)), nil
}

// selectionKey renders a selection deterministically by walking dimensions in
// their declaration order.
func selectionKey(sel vehiclefilter.Selection) string {
	var b strings.Builder
	for _, dim := range vehiclefilter.Dimensions() {
		if token, ok := sel.Get(dim); ok {
			b.WriteString(string(dim))
			b.WriteByte('=')
			b.WriteString(token)
			b.WriteByte(';')
		}
	}
	return b.String()
}
