package rank_test

import (
	"context"
	"errors"
	"lol-tracker/internal/api"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/rank"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leagueResponse struct {
	entries []api.LeagueEntry
	err     error
}

type fakeSource struct {
	mu        sync.Mutex
	responses map[string][]leagueResponse
	calls     map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		responses: make(map[string][]leagueResponse),
		calls:     make(map[string]int),
	}
}

// respond queues answers for puuid; the last one repeats.
func (s *fakeSource) respond(puuid string, responses ...leagueResponse) {
	s.responses[puuid] = responses
}

func (s *fakeSource) GetLeagueEntries(_ context.Context, puuid string) ([]api.LeagueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.calls[puuid]
	s.calls[puuid] = n + 1

	queued := s.responses[puuid]
	if len(queued) == 0 {
		return nil, nil
	}
	r := queued[min(n, len(queued)-1)]
	return r.entries, r.err
}

func (s *fakeSource) callCount(puuid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[puuid]
}

type recordedSleeps struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordedSleeps) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *recordedSleeps) backoffs() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []time.Duration
	for _, d := range r.delays {
		if d != testConfig().Pacing {
			out = append(out, d)
		}
	}
	return out
}

func testConfig() rank.FetcherConfig {
	return rank.DefaultFetcherConfig()
}

func soloEntry(tier, division string) api.LeagueEntry {
	return api.LeagueEntry{QueueType: "RANKED_SOLO_5x5", Tier: tier, Rank: division}
}

func newTestFetcher(source rank.LeagueSource, store rank.Store, sleeps *recordedSleeps, opts ...rank.FetcherOption) *rank.Fetcher {
	opts = append(opts, rank.WithSleeper(sleeps.sleep))
	return rank.NewFetcher(source, store, testConfig(), zerolog.Nop(), opts...)
}

func TestFetcher_ResolveAll(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves ranked and unranked players", func(t *testing.T) {
		source := newFakeSource()
		source.respond("ranked", leagueResponse{entries: []api.LeagueEntry{
			{QueueType: "RANKED_FLEX_SR", Tier: "IRON", Rank: "IV"},
			soloEntry("GOLD", "II"),
		}})
		source.respond("flex-only", leagueResponse{entries: []api.LeagueEntry{
			{QueueType: "RANKED_FLEX_SR", Tier: "DIAMOND", Rank: "I"},
		}})
		source.respond("apex", leagueResponse{entries: []api.LeagueEntry{soloEntry("CHALLENGER", "I")}})

		store := rank.NewMemoryStore(rank.StoreOptions{})
		sleeps := &recordedSleeps{}
		f := newTestFetcher(source, store, sleeps)

		got := f.ResolveAll(ctx, []string{"ranked", "flex-only", "apex", "no-entries"})

		assert.Equal(t, goldII, got["ranked"])
		assert.Equal(t, rank.Unranked, got["flex-only"])
		assert.Equal(t, rank.Ranked(rank.Rank{Tier: rank.TierChallenger}), got["apex"])
		assert.Equal(t, rank.Unranked, got["no-entries"])

		stored, ok := store.Get("ranked")
		require.True(t, ok)
		assert.Equal(t, goldII, stored)

		// one pacing wait per lookup, no backoff
		assert.Equal(t, []time.Duration{
			testConfig().Pacing, testConfig().Pacing, testConfig().Pacing, testConfig().Pacing,
		}, sleeps.delays)
	})

	t.Run("store hit skips the source", func(t *testing.T) {
		source := newFakeSource()
		source.respond("p1", leagueResponse{entries: []api.LeagueEntry{soloEntry("GOLD", "II")}})

		store := rank.NewMemoryStore(rank.StoreOptions{})
		f := newTestFetcher(source, store, &recordedSleeps{})

		f.ResolveAll(ctx, []string{"p1"})
		got := f.ResolveAll(ctx, []string{"p1"})

		assert.Equal(t, goldII, got["p1"])
		assert.Equal(t, 1, source.callCount("p1"))
	})

	t.Run("duplicate ids are looked up once", func(t *testing.T) {
		source := newFakeSource()
		store := rank.NewMemoryStore(rank.StoreOptions{})
		f := newTestFetcher(source, store, &recordedSleeps{})

		got := f.ResolveAll(ctx, []string{"p1", "p1", "p1"})

		assert.Len(t, got, 1)
		assert.Equal(t, 1, source.callCount("p1"))
	})

	t.Run("exhausted retries give unknown without failing the batch", func(t *testing.T) {
		source := newFakeSource()
		source.respond("flaky", leagueResponse{err: domain.ErrUpstreamUnavailable})
		source.respond("fine", leagueResponse{entries: []api.LeagueEntry{soloEntry("GOLD", "II")}})

		store := rank.NewMemoryStore(rank.StoreOptions{})
		sleeps := &recordedSleeps{}
		f := newTestFetcher(source, store, sleeps)

		got := f.ResolveAll(ctx, []string{"flaky", "fine"})

		assert.Equal(t, rank.Unknown, got["flaky"])
		assert.Equal(t, goldII, got["fine"])
		assert.Equal(t, 3, source.callCount("flaky"))
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeps.backoffs())

		stored, ok := store.Get("flaky")
		require.True(t, ok)
		assert.Equal(t, rank.Unknown, stored)
	})

	t.Run("recovers on a later attempt", func(t *testing.T) {
		source := newFakeSource()
		source.respond("p1",
			leagueResponse{err: errors.New("connection reset")},
			leagueResponse{entries: []api.LeagueEntry{soloEntry("GOLD", "II")}},
		)

		sleeps := &recordedSleeps{}
		f := newTestFetcher(source, rank.NewMemoryStore(rank.StoreOptions{}), sleeps)

		got := f.ResolveAll(ctx, []string{"p1"})

		assert.Equal(t, goldII, got["p1"])
		assert.Equal(t, 2, source.callCount("p1"))
		assert.Equal(t, []time.Duration{2 * time.Second}, sleeps.backoffs())
	})

	t.Run("longer retry-after wins over backoff", func(t *testing.T) {
		source := newFakeSource()
		source.respond("p1",
			leagueResponse{err: &api.StatusError{StatusCode: 429, RetryAfter: 10 * time.Second}},
			leagueResponse{err: &api.StatusError{StatusCode: 429, RetryAfter: time.Second}},
			leagueResponse{entries: []api.LeagueEntry{soloEntry("SILVER", "I")}},
		)

		sleeps := &recordedSleeps{}
		f := newTestFetcher(source, rank.NewMemoryStore(rank.StoreOptions{}), sleeps)

		got := f.ResolveAll(ctx, []string{"p1"})

		assert.Equal(t, "Silver 1", got["p1"].Display())
		assert.Equal(t, []time.Duration{10 * time.Second, 4 * time.Second}, sleeps.backoffs())
	})

	t.Run("retry-after is capped", func(t *testing.T) {
		source := newFakeSource()
		source.respond("p1",
			leagueResponse{err: &api.StatusError{StatusCode: 429, RetryAfter: time.Hour}},
			leagueResponse{entries: []api.LeagueEntry{soloEntry("GOLD", "II")}},
		)

		sleeps := &recordedSleeps{}
		f := newTestFetcher(source, rank.NewMemoryStore(rank.StoreOptions{}), sleeps)

		got := f.ResolveAll(ctx, []string{"p1"})

		assert.Equal(t, goldII, got["p1"])
		assert.Equal(t, []time.Duration{constants.MaxRetryAfter}, sleeps.backoffs())
	})

	t.Run("malformed entries are retried", func(t *testing.T) {
		source := newFakeSource()
		source.respond("p1", leagueResponse{entries: []api.LeagueEntry{soloEntry("WOOD", "IV")}})

		f := newTestFetcher(source, rank.NewMemoryStore(rank.StoreOptions{}), &recordedSleeps{})

		got := f.ResolveAll(ctx, []string{"p1"})

		assert.Equal(t, rank.Unknown, got["p1"])
		assert.Equal(t, 3, source.callCount("p1"))
	})

	t.Run("cancelled context stores nothing", func(t *testing.T) {
		source := newFakeSource()
		store := rank.NewMemoryStore(rank.StoreOptions{})
		f := newTestFetcher(source, store, &recordedSleeps{})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		got := f.ResolveAll(cancelled, []string{"p1"})

		assert.Equal(t, rank.Unknown, got["p1"])
		assert.Equal(t, 0, source.callCount("p1"))
		_, ok := store.Get("p1")
		assert.False(t, ok)
	})
}

type fakeSharedCache struct {
	mu      sync.Mutex
	entries map[string]rank.Resolved
	err     error
}

func (c *fakeSharedCache) GetRank(_ context.Context, puuid string) (rank.Resolved, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return rank.Resolved{}, false, c.err
	}
	r, ok := c.entries[puuid]
	return r, ok, nil
}

func (c *fakeSharedCache) SetRank(_ context.Context, puuid string, r rank.Resolved) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.entries[puuid] = r
	return nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	recorded map[string]rank.Resolved
}

func (r *fakeRecorder) RecordRank(_ context.Context, puuid string, resolved rank.Resolved) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded[puuid] = resolved
	return nil
}

func TestFetcher_SharedCache(t *testing.T) {
	ctx := context.Background()

	t.Run("shared hit fills the store without a lookup", func(t *testing.T) {
		source := newFakeSource()
		shared := &fakeSharedCache{entries: map[string]rank.Resolved{"p1": goldII}}
		store := rank.NewMemoryStore(rank.StoreOptions{})
		f := newTestFetcher(source, store, &recordedSleeps{}, rank.WithSharedCache(shared))

		got := f.ResolveAll(ctx, []string{"p1"})

		assert.Equal(t, goldII, got["p1"])
		assert.Equal(t, 0, source.callCount("p1"))
		stored, ok := store.Get("p1")
		require.True(t, ok)
		assert.Equal(t, goldII, stored)
	})

	t.Run("unknown is not published", func(t *testing.T) {
		source := newFakeSource()
		source.respond("down", leagueResponse{err: domain.ErrUpstreamUnavailable})
		source.respond("up", leagueResponse{entries: []api.LeagueEntry{soloEntry("GOLD", "II")}})
		shared := &fakeSharedCache{entries: map[string]rank.Resolved{}}
		f := newTestFetcher(source, rank.NewMemoryStore(rank.StoreOptions{}), &recordedSleeps{}, rank.WithSharedCache(shared))

		f.ResolveAll(ctx, []string{"down", "up"})

		assert.NotContains(t, shared.entries, "down")
		assert.Equal(t, goldII, shared.entries["up"])
	})

	t.Run("shared cache errors fall through to the source", func(t *testing.T) {
		source := newFakeSource()
		source.respond("p1", leagueResponse{entries: []api.LeagueEntry{soloEntry("GOLD", "II")}})
		shared := &fakeSharedCache{err: errors.New("redis down")}
		f := newTestFetcher(source, rank.NewMemoryStore(rank.StoreOptions{}), &recordedSleeps{}, rank.WithSharedCache(shared))

		got := f.ResolveAll(ctx, []string{"p1"})

		assert.Equal(t, goldII, got["p1"])
		assert.Equal(t, 1, source.callCount("p1"))
	})

	t.Run("recorder sees fetched ranks", func(t *testing.T) {
		source := newFakeSource()
		source.respond("p1", leagueResponse{entries: []api.LeagueEntry{soloEntry("GOLD", "II")}})
		source.respond("down", leagueResponse{err: domain.ErrUpstreamUnavailable})
		recorder := &fakeRecorder{recorded: map[string]rank.Resolved{}}
		f := newTestFetcher(source, rank.NewMemoryStore(rank.StoreOptions{}), &recordedSleeps{}, rank.WithRecorder(recorder))

		got := f.ResolveAll(ctx, []string{"p1", "down", "no-entries"})

		assert.Equal(t, rank.Unknown, got["down"])
		assert.Equal(t, goldII, recorder.recorded["p1"])
		assert.Equal(t, rank.Unranked, recorder.recorded["no-entries"])
		assert.NotContains(t, recorder.recorded, "down")
	})
}

func TestFetcher_Observe(t *testing.T) {
	ctx := context.Background()
	store := rank.NewMemoryStore(rank.StoreOptions{})
	source := newFakeSource()
	f := newTestFetcher(source, store, &recordedSleeps{})

	r, err := f.Observe(ctx, "p1", []api.LeagueEntry{soloEntry("GOLD", "II")})
	require.NoError(t, err)
	assert.Equal(t, goldII, r)

	got := f.ResolveAll(ctx, []string{"p1"})
	assert.Equal(t, goldII, got["p1"])
	assert.Equal(t, 0, source.callCount("p1"))

	_, err = f.Observe(ctx, "p2", []api.LeagueEntry{soloEntry("GOLD", "VI")})
	assert.ErrorIs(t, err, domain.ErrInvalidRank)
	_, ok := store.Get("p2")
	assert.False(t, ok)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "abcdefgh...", rank.Redact("abcdefghijklmnop"))
	assert.Equal(t, "ab...", rank.Redact("abcd"))
	assert.Equal(t, "...", rank.Redact(""))
}
