package rescache

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gogpu/rescache/metrics"
)

// Cache maps keys to expensive-to-construct values and reclaims entries
// through an explicit aging protocol instead of reference counting.
//
// Each entry carries an age counter: adding an already cached key raises
// it by one (a keep-alive; the supplied value is ignored), invalidating
// lowers it by one, and every [Cache.CollectItems] sweep removes entries
// at age zero and lowers the rest. The backing store is created lazily on
// the first add, freezing the key strategies and the value kind; until
// then the cache can be reconfigured freely.
//
// A Cache is not safe for concurrent use. See the package documentation
// for the ownership model.
type Cache[K comparable, V any] struct {
	name string

	keyHash  Hasher[K]
	keyEqual EqualFunc[K]
	keyFree  func(K)

	ownership Ownership[V]

	store *store[K, V]

	m *metrics.CacheMetrics

	// Counters are atomic so Stats can be sampled from a scrape
	// goroutine while the owner mutates the cache.
	items         atomic.Int64
	hits          atomic.Uint64
	misses        atomic.Uint64
	adds          atomic.Uint64
	keepAlives    atomic.Uint64
	invalidations atomic.Uint64
	collected     atomic.Uint64
}

// New constructs an empty, unconfigured cache. Key strategies default to
// == equality and a seeded maphash; the value kind starts unset and must
// be configured (via [WithValueKind] or [Cache.SetValueKind]) before the
// first add.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		keyHash:  defaultHasher[K](),
		keyEqual: defaultEqual[K],
		m:        metrics.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetName sets the cache's diagnostic label. Unlike the other setters it
// may be called at any time.
func (c *Cache[K, V]) SetName(name string) { c.name = name }

// Name returns the cache's diagnostic label.
func (c *Cache[K, V]) Name() string { return c.name }

// SetHashFunc sets the hashing strategy for keys. Passing nil restores
// the default seeded maphash.
//
// Key strategies are frozen once the backing store exists: calling
// SetHashFunc after the first add is a programming error, reported
// through the package logger and refused.
func (c *Cache[K, V]) SetHashFunc(h Hasher[K]) {
	if !c.configurable("SetHashFunc") {
		return
	}
	if h == nil {
		h = defaultHasher[K]()
	}
	c.keyHash = h
}

// SetEqualFunc sets the equality strategy for keys. Passing nil restores
// the default == comparison. Same precondition as [Cache.SetHashFunc].
func (c *Cache[K, V]) SetEqualFunc(eq EqualFunc[K]) {
	if !c.configurable("SetEqualFunc") {
		return
	}
	if eq == nil {
		eq = defaultEqual[K]
	}
	c.keyEqual = eq
}

// SetKeyFreeFunc sets a callback invoked for every key that leaves the
// store, whether through a collection sweep or [Cache.Clear]. Same
// precondition as [Cache.SetHashFunc].
func (c *Cache[K, V]) SetKeyFreeFunc(free func(K)) {
	if !c.configurable("SetKeyFreeFunc") {
		return
	}
	c.keyFree = free
}

// SetValueKind configures how the cache owns its values. Only the three
// defined ownership variants are accepted; anything else is rejected with
// an error log and the previous configuration is kept. Same precondition
// as [Cache.SetHashFunc].
func (c *Cache[K, V]) SetValueKind(o Ownership[V]) {
	if !c.configurable("SetValueKind") {
		return
	}
	if !o.valid() {
		Logger().Error("rescache: unsupported value kind",
			slog.String("cache", c.name),
			slog.String("kind", o.kind.String()))
		return
	}
	c.ownership = o
}

// ValueKind returns the configured ownership tag, KindInvalid if unset.
func (c *Cache[K, V]) ValueKind() ValueKind { return c.ownership.Kind() }

// SetMetrics replaces the cache's instruments. Passing nil restores the
// no-op set. May be called at any time.
func (c *Cache[K, V]) SetMetrics(m *metrics.CacheMetrics) {
	if m == nil {
		m = metrics.Nop()
	}
	c.m = m
}

// configurable guards the setters that require the store to not exist
// yet. Reconfiguring a live cache would silently corrupt the store, so
// the violation is reported loudly and the call refused.
func (c *Cache[K, V]) configurable(op string) bool {
	if c.store != nil {
		Logger().Error("rescache: configuration after first add",
			slog.String("cache", c.name),
			slog.String("op", op))
		return false
	}
	return true
}

// AddItem inserts value under key, or reinforces the existing entry.
//
// If key is already cached, the entry's age is incremented and value is
// ignored entirely: re-adding is a keep-alive signal, not a replace.
// Otherwise a new entry is created at age 1, owning value according to
// the configured kind. Adding to a cache with no value kind configured is
// a programming error: it is logged and nothing is inserted.
//
// The first successful AddItem creates the backing store, freezing the
// key strategies and the value kind.
func (c *Cache[K, V]) AddItem(key K, value V) {
	if c.store == nil {
		if c.ownership.Kind() == KindInvalid {
			Logger().Error("rescache: no value kind configured; did you forget to call SetValueKind?",
				slog.String("cache", c.name))
			return
		}
		own := c.ownership
		c.store = newStore(c.keyHash, c.keyEqual, c.keyFree, func(it *item[V]) {
			own.dispose(it.value)
		})
	}

	if it := c.store.lookup(key); it != nil {
		it.age++
		c.keepAlives.Add(1)
		c.m.KeepAlives.Inc()
		return
	}

	c.store.insert(key, newItem(c.ownership, value))
	c.adds.Add(1)
	c.items.Add(1)
	c.m.Adds.Inc()
	c.m.Items.Inc()
}

// HasItem reports whether key is currently cached. It has no side
// effects; a cache whose store does not exist yet reports false.
func (c *Cache[K, V]) HasItem(key K) bool {
	if c.store == nil {
		return false
	}
	return c.store.lookup(key) != nil
}

// GetItem returns the value cached under key. A hit refreshes the
// entry's last-access time; eviction itself is purely age-driven, so the
// timestamp only serves consumers interested in recency.
func (c *Cache[K, V]) GetItem(key K) (V, bool) {
	var zero V
	if c.store == nil {
		c.miss()
		return zero, false
	}
	it := c.store.lookup(key)
	if it == nil {
		c.miss()
		return zero, false
	}
	c.hits.Add(1)
	c.m.Hits.Inc()
	return it.touch(), true
}

func (c *Cache[K, V]) miss() {
	c.misses.Add(1)
	c.m.Misses.Inc()
}

// InvalidateItem drops one unit of liveness from the entry under key,
// reporting whether the key was found. Invalidating an entry already at
// age zero is a caller accounting bug (more invalidations than adds): the
// age stays clamped at zero and a warning is logged, but the call still
// reports true.
func (c *Cache[K, V]) InvalidateItem(key K) bool {
	if c.store == nil {
		return false
	}
	it := c.store.lookup(key)
	if it == nil {
		return false
	}

	c.invalidations.Add(1)
	c.m.Invalidations.Inc()

	if it.age == 0 {
		Logger().Warn("rescache: too many invalidations",
			slog.String("cache", c.name),
			slog.Any("key", key))
		return true
	}
	it.age--
	return true
}

// CollectItems performs one reclamation sweep: every entry whose age has
// reached zero is removed, releasing its owned value and running the
// key-free callback, and every surviving entry's age drops by one. The
// caller drives sweeps from an idle tick or periodic timer.
//
// Returns the number of entries removed; zero, without error, when the
// store does not exist yet.
func (c *Cache[K, V]) CollectItems() int {
	if c.store == nil {
		return 0
	}

	removed := c.store.sweep(func(_ K, it *item[V]) bool {
		if it.age == 0 {
			return true
		}
		it.age--
		return false
	})

	if removed > 0 {
		c.collected.Add(uint64(removed))
		c.items.Add(int64(-removed))
		c.m.Collected.Add(float64(removed))
		c.m.Items.Add(-float64(removed))
	}

	Logger().Debug("rescache: collect sweep",
		slog.String("cache", c.name),
		slog.Int("removed", removed),
		slog.Int("remaining", c.store.len()))

	return removed
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	if c.store == nil {
		return 0
	}
	return c.store.len()
}

// Clear releases every remaining entry through the per-kind release path,
// runs the key-free callback for every key, and drops the backing store.
// Afterwards the cache behaves like a fresh instance: key strategies and
// the value kind may be configured again.
func (c *Cache[K, V]) Clear() {
	if c.store == nil {
		return
	}
	n := c.store.len()
	c.store.destroy()
	c.store = nil
	if n > 0 {
		c.items.Add(int64(-n))
		c.m.Items.Add(-float64(n))
	}
}

// ItemInfo describes a cache entry's bookkeeping state at one point in
// time.
type ItemInfo struct {
	// Age is the entry's current liveness counter.
	Age int64
	// LastAccess is when GetItem last returned the entry; zero if it
	// never has.
	LastAccess time.Time
	// Kind is the ownership tag the entry was created under.
	Kind ValueKind
}

// ItemInfo returns diagnostic information about the entry under key
// without touching its access metadata.
func (c *Cache[K, V]) ItemInfo(key K) (ItemInfo, bool) {
	if c.store == nil {
		return ItemInfo{}, false
	}
	it := c.store.lookup(key)
	if it == nil {
		return ItemInfo{}, false
	}
	return ItemInfo{Age: it.age, LastAccess: it.lastAccess, Kind: it.kind}, true
}
