package rescache

import "github.com/gogpu/rescache/metrics"

// Option configures a Cache during creation. All options route through
// the corresponding setters, so the same validation applies.
//
// Example:
//
//	c := rescache.New[string, *Texture](
//	    rescache.WithName[string, *Texture]("textures"),
//	    rescache.WithValueKind[string](rescache.Unmanaged[*Texture]()),
//	)
type Option[K comparable, V any] func(*Cache[K, V])

// WithName sets the cache's diagnostic label.
func WithName[K comparable, V any](name string) Option[K, V] {
	return func(c *Cache[K, V]) { c.SetName(name) }
}

// WithHashFunc sets the key hashing strategy.
func WithHashFunc[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(c *Cache[K, V]) { c.SetHashFunc(h) }
}

// WithEqualFunc sets the key equality strategy.
func WithEqualFunc[K comparable, V any](eq EqualFunc[K]) Option[K, V] {
	return func(c *Cache[K, V]) { c.SetEqualFunc(eq) }
}

// WithKeyFreeFunc sets the callback run for keys leaving the store.
func WithKeyFreeFunc[K comparable, V any](free func(K)) Option[K, V] {
	return func(c *Cache[K, V]) { c.SetKeyFreeFunc(free) }
}

// WithValueKind sets the value ownership variant. Invalid variants are
// rejected the same way [Cache.SetValueKind] rejects them.
func WithValueKind[K comparable, V any](o Ownership[V]) Option[K, V] {
	return func(c *Cache[K, V]) { c.SetValueKind(o) }
}

// WithMetrics sets the cache's monitoring instruments.
func WithMetrics[K comparable, V any](m *metrics.CacheMetrics) Option[K, V] {
	return func(c *Cache[K, V]) { c.SetMetrics(m) }
}
