package rescache

import "strconv"

// ValueKind tags how a cache owns the values it stores.
type ValueKind int

const (
	// KindInvalid is the zero ValueKind. A cache whose kind is still
	// KindInvalid refuses to insert items.
	KindInvalid ValueKind = iota

	// KindUnmanaged stores values as-is; the cache never copies,
	// acquires or releases them.
	KindUnmanaged

	// KindCopy makes the cache own a private copy of every inserted
	// value, created on insert and released on eviction.
	KindCopy

	// KindRefCounted makes the cache hold one strong reference per
	// entry, acquired on insert and released on eviction.
	KindRefCounted
)

// String returns a short name for the kind, for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnmanaged:
		return "unmanaged"
	case KindCopy:
		return "copy"
	case KindRefCounted:
		return "refcounted"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Ownership bundles a [ValueKind] with the capability functions the
// embedding environment supplies for that kind. Construct one with
// [Unmanaged], [CopySemantics] or [RefCounted]; the zero value means
// "not configured" and is rejected by [Cache.SetValueKind].
type Ownership[V any] struct {
	kind    ValueKind
	dup     func(V) V
	acquire func(V) V
	release func(V)
}

// Unmanaged returns the ownership variant under which the cache stores
// raw values and never manages their lifetime.
func Unmanaged[V any]() Ownership[V] {
	return Ownership[V]{kind: KindUnmanaged}
}

// CopySemantics returns the ownership variant under which the cache owns
// a private copy of each value: dup runs on insert, release on eviction.
// Both functions are required.
func CopySemantics[V any](dup func(V) V, release func(V)) Ownership[V] {
	return Ownership[V]{kind: KindCopy, dup: dup, release: release}
}

// RefCounted returns the ownership variant under which the cache holds
// one strong reference to each value: acquire runs on insert, release on
// eviction. Both functions are required.
func RefCounted[V any](acquire func(V) V, release func(V)) Ownership[V] {
	return Ownership[V]{kind: KindRefCounted, acquire: acquire, release: release}
}

// Kind returns the ownership tag.
func (o Ownership[V]) Kind() ValueKind { return o.kind }

// valid reports whether the variant is one of the three defined kinds
// with all required capability functions present.
func (o Ownership[V]) valid() bool {
	switch o.kind {
	case KindUnmanaged:
		return true
	case KindCopy:
		return o.dup != nil && o.release != nil
	case KindRefCounted:
		return o.acquire != nil && o.release != nil
	default:
		return false
	}
}

// adopt applies the insert-side capability to a value entering the cache.
func (o Ownership[V]) adopt(v V) V {
	switch o.kind {
	case KindCopy:
		return o.dup(v)
	case KindRefCounted:
		return o.acquire(v)
	default:
		return v
	}
}

// dispose applies the eviction-side capability to a value leaving the
// cache. Unmanaged values are left alone.
func (o Ownership[V]) dispose(v V) {
	if o.release != nil {
		o.release(v)
	}
}
