package rescache

import "time"

// item is one live cache entry. The kind tag is copied from the cache at
// creation time; the age counter is the entry's liveness signal and never
// goes below zero.
type item[V any] struct {
	kind       ValueKind
	value      V
	lastAccess time.Time
	age        int64
}

// newItem constructs an entry owning value according to o. New entries
// start at age 1.
func newItem[V any](o Ownership[V], value V) *item[V] {
	return &item[V]{
		kind:  o.Kind(),
		value: o.adopt(value),
		age:   1,
	}
}

// touch refreshes the entry's last-access time and returns its value.
func (it *item[V]) touch() V {
	it.lastAccess = time.Now()
	return it.value
}
