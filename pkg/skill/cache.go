package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot is an immutable, complete set of compiled rules.
type Snapshot struct {
	Rules    []Rule
	LoadedAt time.Time
}

// Cache holds the process-wide compiled catalog. Readers get whole snapshots;
// a load builds a new slice and swaps the pointer, so a reader sees either
// the old or the new list, never a mix.
type Cache struct {
	src     Source
	current atomic.Pointer[Snapshot]
	group   singleflight.Group
	// fetchMu serialises fetch+swap so an older fetch never replaces a newer snapshot.
	fetchMu sync.Mutex
	// epoch is bumped when a reload fetch starts; callers only share a fetch
	// keyed by the epoch they observed on arrival.
	epoch atomic.Uint64
}

// NewCache creates an empty cache backed by src. Load must be called before
// the cache is used for extraction.
func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Load fetches the full catalog, compiles every definition and swaps the
// rule list. On failure the previous snapshot stays in place.
func (c *Cache) Load(ctx context.Context) error {
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()
	_, err := c.load(ctx)
	return err
}

func (c *Cache) load(ctx context.Context) (int, error) {
	defs, err := c.src.FetchAll(ctx)
	if err != nil {
		slog.Warn("skill catalog fetch failed", slog.Any("error", err))
		if !errors.Is(err, ErrCatalogUnavailable) {
			err = fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		return 0, err
	}
	rules := make([]Rule, 0, len(defs))
	for _, d := range defs {
		rules = append(rules, Compile(d))
	}
	c.current.Store(&Snapshot{Rules: rules, LoadedAt: time.Now().UTC()})
	slog.Info("skill catalog loaded", slog.Int("skills", len(rules)))
	return len(rules), nil
}

// Reload has the same effect as Load. Concurrent callers share one fetch,
// but only a fetch that starts after they called, so a reload always sees
// store changes made before it was requested.
func (c *Cache) Reload(ctx context.Context) (int, error) {
	key := strconv.FormatUint(c.epoch.Load(), 10)
	v, err, _ := c.group.Do(key, func() (any, error) {
		c.fetchMu.Lock()
		defer c.fetchMu.Unlock()
		c.epoch.Add(1)
		return c.load(ctx)
	})
	if err != nil {
		return c.Len(), err
	}
	return v.(int), nil
}

// Snapshot returns the current rules. The slice is shared: callers must not
// modify it. Before the first successful load it returns nil.
func (c *Cache) Snapshot() []Rule {
	if s := c.current.Load(); s != nil {
		return s.Rules
	}
	return nil
}

// Current returns the full snapshot including its load time, or nil.
func (c *Cache) Current() *Snapshot {
	return c.current.Load()
}

// Loaded reports whether at least one load has completed.
func (c *Cache) Loaded() bool {
	return c.current.Load() != nil
}

// Len returns the number of rules in the current snapshot.
func (c *Cache) Len() int {
	return len(c.Snapshot())
}
