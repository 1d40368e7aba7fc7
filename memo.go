package aoc

import "tailscale.com/util/deephash"

// Memo caches the results of a recursive computation by key. The key must
// capture everything the result depends on.
//
// A Memo may be shared across several top-level calls that have
// sub-problems in common. It is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	m      map[K]V
	hits   int
	misses int
}

func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{m: make(map[K]V)}
}

// Do returns the cached result for key, calling compute and caching its
// result if there is none yet. compute may call Do recursively.
func (m *Memo[K, V]) Do(key K, compute func() V) V {
	if v, ok := m.m[key]; ok {
		m.hits++
		return v
	}
	m.misses++
	v := compute()
	InitMap(&m.m)
	m.m[key] = v
	return v
}

func (m *Memo[K, V]) Get(key K) (V, bool) {
	v, ok := m.m[key]
	return v, ok
}

func (m *Memo[K, V]) Len() int { return len(m.m) }

// Misses returns how many times Do had to compute a result.
func (m *Memo[K, V]) Misses() int { return m.misses }

// Hits returns how many times Do answered from the cache.
func (m *Memo[K, V]) Hits() int { return m.hits }

// Recurse evaluates step at key through m. step receives a function to
// recurse into sub-problems; every call through it is memoized.
func Recurse[K comparable, V any](m *Memo[K, V], key K, step func(self func(K) V, key K) V) V {
	var self func(K) V
	self = func(k K) V {
		return m.Do(k, func() V {
			return step(self, k)
		})
	}
	return self(key)
}

// HashMemo is a Memo for states that are not comparable, such as
// structs holding slices. States are keyed by their deep hash.
type HashMemo[S any, V any] struct {
	memo Memo[deephash.Sum, V]
	hash func(*S) deephash.Sum
}

func NewHashMemo[S any, V any]() *HashMemo[S, V] {
	return &HashMemo[S, V]{
		memo: Memo[deephash.Sum, V]{m: make(map[deephash.Sum]V)},
		hash: deephash.HasherForType[S](),
	}
}

// Do is like Memo.Do. state is hashed before compute runs, so compute
// may reuse its memory afterwards.
func (m *HashMemo[S, V]) Do(state S, compute func() V) V {
	return m.memo.Do(m.hash(&state), compute)
}

func (m *HashMemo[S, V]) Len() int    { return m.memo.Len() }
func (m *HashMemo[S, V]) Misses() int { return m.memo.Misses() }
func (m *HashMemo[S, V]) Hits() int   { return m.memo.Hits() }
