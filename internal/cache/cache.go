// Package cache holds the process-wide snapshot of the articles table.
// It owns the TTL policy, manual invalidation, and the single-flight
// guarantee that concurrent readers never trigger more than one remote
// fetch for the same staleness window.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sonikratika023-droid/livepulse-automated/internal/article"
)

// Fetcher is the one capability the cache needs from the remote store.
type Fetcher interface {
	SelectAll(ctx context.Context, table string) (article.Table, error)
}

// Result is what a Get returns. Exactly one of these shapes comes back:
//
//   - fresh data: Table set, Stale false, Err nil
//   - stale fallback: Table set to the previous snapshot, Stale true, Err
//     carrying the refresh failure as a diagnostic
//   - unavailable: Table nil, Err set — no snapshot has ever succeeded,
//     which is distinct from a legitimately empty table
type Result struct {
	Table      article.Table
	CapturedAt time.Time
	Stale      bool
	Err        error
}

// Unavailable reports whether no usable snapshot exists at all.
func (r Result) Unavailable() bool {
	return r.Table == nil && r.Err != nil
}

type entry struct {
	table      article.Table
	capturedAt time.Time
}

// Cache is safe for concurrent use. The entry pointer is the only shared
// mutable state; it is swapped wholesale under mu, so readers observe
// either the entire old snapshot or the entire new one.
type Cache struct {
	fetcher Fetcher
	table   string
	ttl     time.Duration
	now     func() time.Time

	group singleflight.Group

	mu            sync.Mutex
	entry         *entry
	invalidatedAt time.Time
}

// Option configures a Cache at construction.
type Option func(*Cache)

// WithClock injects the time source, used by tests to step through the
// TTL window deterministically.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New builds a cache over fetcher for the named table. ttl is fixed for
// the life of the cache; Invalidate is the only runtime escape hatch.
func New(fetcher Fetcher, table string, ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		fetcher: fetcher,
		table:   table,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the current snapshot, refreshing it first when the entry
// has aged past the TTL or been invalidated. Concurrent callers during a
// refresh all share the one in-flight fetch.
func (c *Cache) Get(ctx context.Context) Result {
	if res, ok := c.cached(); ok {
		return res
	}

	v, _, _ := c.group.Do("refresh", func() (interface{}, error) {
		return c.refresh(ctx), nil
	})
	return v.(Result)
}

// Invalidate marks the current entry stale immediately. The next Get
// refreshes regardless of how much TTL remains.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.invalidatedAt = c.now()
	c.mu.Unlock()
}

// cached returns the entry if it is still fresh: captured strictly after
// the last invalidation and within the TTL.
func (c *Cache) cached() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entry
	if e == nil {
		return Result{}, false
	}
	if !e.capturedAt.After(c.invalidatedAt) {
		return Result{}, false
	}
	if c.now().Sub(e.capturedAt) >= c.ttl {
		return Result{}, false
	}
	return Result{Table: e.table, CapturedAt: e.capturedAt}, true
}

func (c *Cache) refresh(ctx context.Context) Result {
	// A caller that queued behind an in-flight refresh arrives here after
	// it finished; the entry it installed is fresh, so don't fetch again.
	if res, ok := c.cached(); ok {
		return res
	}

	table, err := c.fetcher.SelectAll(ctx, c.table)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// Degrade to the previous snapshot rather than blanking the
		// dashboard; the error rides along once as a diagnostic.
		if e := c.entry; e != nil {
			return Result{Table: e.table, CapturedAt: e.capturedAt, Stale: true, Err: err}
		}
		return Result{Err: err}
	}

	c.entry = &entry{table: table, capturedAt: c.now()}
	return Result{Table: table, CapturedAt: c.entry.capturedAt}
}
