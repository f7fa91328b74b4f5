package rank_test

import (
	"fmt"
	"lol-tracker/internal/rank"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goldII = rank.Ranked(rank.Rank{Tier: rank.TierGold, Division: rank.DivisionII})

func TestMemoryStore_GetPut(t *testing.T) {
	store := rank.NewMemoryStore(rank.StoreOptions{})

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Put("p1", goldII)
	store.Put("p2", rank.Unranked)
	store.Put("p3", rank.Unknown)

	got, ok := store.Get("p1")
	require.True(t, ok)
	assert.Equal(t, goldII, got)

	got, ok = store.Get("p2")
	require.True(t, ok)
	assert.Equal(t, rank.Unranked, got)

	got, ok = store.Get("p3")
	require.True(t, ok)
	assert.Equal(t, rank.Unknown, got)

	t.Run("overwrite replaces value", func(t *testing.T) {
		store.Put("p2", goldII)
		got, ok := store.Get("p2")
		require.True(t, ok)
		assert.Equal(t, goldII, got)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		store.Put("p4", rank.Resolved{})
		_, ok := store.Get("p4")
		assert.False(t, ok)
	})
}

func TestMemoryStore_TTL(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	for _, maxEntries := range []int{0, 64} {
		t.Run(fmt.Sprintf("max_entries=%d", maxEntries), func(t *testing.T) {
			store := rank.NewMemoryStore(rank.StoreOptions{TTL: time.Minute, MaxEntries: maxEntries})
			store.SetClock(clock)

			store.Put("p1", goldII)
			now = now.Add(59 * time.Second)
			_, ok := store.Get("p1")
			assert.True(t, ok)

			now = now.Add(time.Second)
			_, ok = store.Get("p1")
			assert.False(t, ok)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestMemoryStore_LRU(t *testing.T) {
	// 32 shards with one slot each
	store := rank.NewMemoryStore(rank.StoreOptions{MaxEntries: 32})

	for i := range 1000 {
		store.Put(fmt.Sprintf("p%d", i), goldII)
	}
	assert.LessOrEqual(t, store.Len(), 32)

	// the most recent write always survives
	_, ok := store.Get("p999")
	assert.True(t, ok)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := rank.NewMemoryStore(rank.StoreOptions{})

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				puuid := fmt.Sprintf("p%d", i)
				store.Put(puuid, goldII)
				if r, ok := store.Get(puuid); ok {
					assert.True(t, r.Valid(), "worker %d", w)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, store.Len())
}
