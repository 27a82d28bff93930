package di

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// outcome is the tagged result a cache tier stores: either a successfully
// constructed service or a previously-raised failure. Caching the failure is
// what lets a broken factory fail repeat resolutions identically without
// being re-invoked.
type outcome struct {
	value any
	err   error
}

func success(v any) outcome     { return outcome{value: v} }
func failure(err error) outcome { return outcome{err: err} }

func (o outcome) unwrap() (any, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.value, nil
}

// clientCache is the per-(interface, client) tier.
//
// It memoizes the full resolution outcome a given client observed for a given
// interface, successes and failures alike. Entries never expire and are never
// evicted; the container's lifetime bounds theirs.
//
// Writes are first-wins: under concurrent first-time resolutions of the same
// key, whichever outcome lands first is authoritative and every caller is
// handed it back.
type clientCache struct {
	store *gocache.Cache
}

func newClientCache() *clientCache {
	return &clientCache{store: gocache.New(gocache.NoExpiration, 0)}
}

func clientKey(iface, client Token) string {
	return iface.key() + "\x00" + client.key()
}

func (cc *clientCache) get(key string) (outcome, bool) {
	v, ok := cc.store.Get(key)
	if !ok {
		return outcome{}, false
	}
	return v.(outcome), true
}

// put stores the outcome unless one is already present, and returns the
// authoritative entry either way.
func (cc *clientCache) put(key string, out outcome) outcome {
	if err := cc.store.Add(key, out, gocache.NoExpiration); err != nil {
		if prior, ok := cc.store.Get(key); ok {
			return prior.(outcome)
		}
	}
	return out
}

// singletonEntry holds one concrete type's construction outcome and
// guarantees the build runs at most once.
type singletonEntry struct {
	once sync.Once
	out  outcome
}

// singletonCache is the per-concrete-type tier.
//
// A concrete service type is constructed at most once per container,
// regardless of how many interfaces or clients route to it and regardless of
// whether the construction succeeded. Concurrent first-time resolutions of
// the same concrete type collapse onto one build call and all observe the
// identical outcome.
type singletonCache struct {
	mu      sync.RWMutex
	entries map[Token]*singletonEntry
}

func newSingletonCache() *singletonCache {
	return &singletonCache{entries: make(map[Token]*singletonEntry)}
}

// resolve returns the cached outcome for service, running build exactly once
// to populate it on first use.
func (sc *singletonCache) resolve(service Token, build func() (any, error)) outcome {
	sc.mu.RLock()
	entry, ok := sc.entries[service]
	sc.mu.RUnlock()

	if !ok {
		sc.mu.Lock()
		entry, ok = sc.entries[service]
		if !ok {
			entry = &singletonEntry{}
			sc.entries[service] = entry
		}
		sc.mu.Unlock()
	}

	entry.once.Do(func() {
		v, err := build()
		if err != nil {
			entry.out = failure(err)
			return
		}
		entry.out = success(v)
	})

	return entry.out
}
