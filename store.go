package rescache

// storeEntry pairs a key with its item inside a collision chain.
type storeEntry[K comparable, V any] struct {
	key  K
	item *item[V]
}

// store is the associative collaborator behind a Cache. It layers the
// injected hash/equal strategies over the builtin map: entries live in
// collision chains keyed by their hash, so keys whose cache identity
// differs from Go equality still work. The key-free callback and the
// item-release function are bound once, at creation.
type store[K comparable, V any] struct {
	keyHash  Hasher[K]
	keyEqual EqualFunc[K]
	keyFree  func(K)
	dispose  func(*item[V])

	buckets map[uint64][]storeEntry[K, V]
	count   int
}

func newStore[K comparable, V any](keyHash Hasher[K], keyEqual EqualFunc[K], keyFree func(K), dispose func(*item[V])) *store[K, V] {
	return &store[K, V]{
		keyHash:  keyHash,
		keyEqual: keyEqual,
		keyFree:  keyFree,
		dispose:  dispose,
		buckets:  make(map[uint64][]storeEntry[K, V]),
	}
}

// lookup returns the item stored under key, or nil.
func (s *store[K, V]) lookup(key K) *item[V] {
	for _, e := range s.buckets[s.keyHash(key)] {
		if s.keyEqual(e.key, key) {
			return e.item
		}
	}
	return nil
}

// insert adds a new entry. The caller has already checked that key is
// absent.
func (s *store[K, V]) insert(key K, it *item[V]) {
	h := s.keyHash(key)
	s.buckets[h] = append(s.buckets[h], storeEntry[K, V]{key: key, item: it})
	s.count++
}

func (s *store[K, V]) len() int { return s.count }

// sweep walks every entry exactly once. Entries for which remove returns
// true are dropped, releasing the key and the owned value; the rest stay.
// Returns the number of entries removed.
func (s *store[K, V]) sweep(remove func(key K, it *item[V]) bool) int {
	removed := 0
	for h, chain := range s.buckets {
		kept := chain[:0]
		for _, e := range chain {
			if remove(e.key, e.item) {
				s.free(e)
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(s.buckets, h)
		} else {
			s.buckets[h] = kept
		}
	}
	s.count -= removed
	return removed
}

// destroy releases every remaining entry and empties the store.
func (s *store[K, V]) destroy() {
	for _, chain := range s.buckets {
		for _, e := range chain {
			s.free(e)
		}
	}
	s.buckets = nil
	s.count = 0
}

// free runs the key-free callback and the bound item release for a
// removed entry.
func (s *store[K, V]) free(e storeEntry[K, V]) {
	if s.keyFree != nil {
		s.keyFree(e.key)
	}
	s.dispose(e.item)
}
