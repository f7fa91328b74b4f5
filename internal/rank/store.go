package rank

import (
	"container/list"
	"hash/fnv"
	"sync"
	"time"
)

const storeShards = 32

type Store interface {
	Get(puuid string) (Resolved, bool)
	Put(puuid string, r Resolved)
}

type StoreOptions struct {
	// TTL expires entries after they are written. Zero keeps them for the process lifetime.
	TTL time.Duration
	// MaxEntries bounds the store, evicting least recently used entries. Zero is unbounded.
	MaxEntries int
}

// MemoryStore is a process-wide rank cache. Each shard has its own lock so
// concurrent batches only contend on the keys they share a shard with.
type MemoryStore struct {
	shards [storeShards]*shard
	ttl    time.Duration
	now    func() time.Time
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used
	max     int
}

type storeEntry struct {
	puuid     string
	value     Resolved
	expiresAt time.Time
}

func NewMemoryStore(opts StoreOptions) *MemoryStore {
	s := &MemoryStore{ttl: opts.TTL, now: time.Now}

	perShard := 0
	if opts.MaxEntries > 0 {
		perShard = (opts.MaxEntries + storeShards - 1) / storeShards
	}
	for i := range s.shards {
		s.shards[i] = &shard{
			entries: make(map[string]*list.Element),
			order:   list.New(),
			max:     perShard,
		}
	}
	return s
}

func (s *MemoryStore) shardFor(puuid string) *shard {
	h := fnv.New32a()
	h.Write([]byte(puuid))
	return s.shards[h.Sum32()%storeShards]
}

func (s *MemoryStore) Get(puuid string) (Resolved, bool) {
	sh := s.shardFor(puuid)

	// unbounded stores never reorder, so reads can share the lock
	if sh.max == 0 {
		sh.mu.RLock()
		el, ok := sh.entries[puuid]
		var e storeEntry
		if ok {
			e = *el.Value.(*storeEntry)
		}
		sh.mu.RUnlock()
		if !ok {
			return Resolved{}, false
		}
		if s.expired(e) {
			s.evictIfStale(sh, puuid)
			return Resolved{}, false
		}
		return e.value, true
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	el, ok := sh.entries[puuid]
	if !ok {
		return Resolved{}, false
	}
	e := el.Value.(*storeEntry)
	if s.expired(*e) {
		sh.order.Remove(el)
		delete(sh.entries, puuid)
		return Resolved{}, false
	}
	sh.order.MoveToFront(el)
	return e.value, true
}

func (s *MemoryStore) Put(puuid string, r Resolved) {
	if !r.Valid() {
		return
	}
	e := &storeEntry{puuid: puuid, value: r}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}

	sh := s.shardFor(puuid)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if el, ok := sh.entries[puuid]; ok {
		el.Value = e
		sh.order.MoveToFront(el)
		return
	}
	sh.entries[puuid] = sh.order.PushFront(e)

	if sh.max > 0 {
		for sh.order.Len() > sh.max {
			oldest := sh.order.Back()
			sh.order.Remove(oldest)
			delete(sh.entries, oldest.Value.(*storeEntry).puuid)
		}
	}
}

func (s *MemoryStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

func (s *MemoryStore) expired(e storeEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

func (s *MemoryStore) evictIfStale(sh *shard, puuid string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if el, ok := sh.entries[puuid]; ok && s.expired(*el.Value.(*storeEntry)) {
		sh.order.Remove(el)
		delete(sh.entries, puuid)
	}
}
