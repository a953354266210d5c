// Package rescache provides an aging cache for expensive-to-construct
// resources.
//
// # Overview
//
// rescache stores values under arbitrary comparable keys and tracks a
// per-entry age counter as a stand-in for reference counting. Adding a key
// that is already cached does not replace the stored value; it increments
// the entry's age, acting as a keep-alive signal. Each call to
// [Cache.CollectItems] removes entries whose age has reached zero and
// decrements the age of every survivor, so an entry outlives exactly as
// many sweeps as it was kept alive since the last one.
//
// # Quick Start
//
//	import "github.com/gogpu/rescache"
//
//	c := rescache.New[string, *Texture]()
//	c.SetName("textures")
//	c.SetValueKind(rescache.Unmanaged[*Texture]())
//
//	c.AddItem("grid", tex)      // age 1
//	c.AddItem("grid", nil)      // keep-alive, value ignored, age 2
//
//	tex, ok := c.GetItem("grid")
//
//	// On an idle tick:
//	removed := c.CollectItems()
//
// # Value Ownership
//
// How the cache owns its values is selected once, before the first add,
// through a closed set of ownership variants:
//
//   - [Unmanaged]: the cache stores the value as-is and never touches it.
//   - [CopySemantics]: the cache owns a private copy; the supplied
//     duplicate function runs on insert and the release function on
//     eviction.
//   - [RefCounted]: the cache holds one strong reference; the supplied
//     acquire function runs on insert and the release function on eviction.
//
// # Key Strategies
//
// Keys are compared with == and hashed with a seeded maphash by default.
// Both can be overridden before the first add (for example to treat string
// keys case-insensitively), and a key-free callback can be installed to run
// whenever a key leaves the store.
//
// # Concurrency
//
// A Cache is owned by a single goroutine: there is no internal locking and
// no background sweeper. The owner serializes all calls and drives
// CollectItems from its own idle tick or timer. The only concession to
// concurrency is [Cache.Stats], whose counters are atomic so a metrics
// scraper may sample them while the owner works.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to surface misuse
// diagnostics (reconfiguration after first add, inserts without a value
// kind, over-invalidation) through log/slog.
package rescache
