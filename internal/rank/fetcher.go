package rank

import (
	"context"
	"errors"
	"fmt"
	"lol-tracker/internal/api"
	"lol-tracker/internal/constants"
	"time"

	"github.com/rs/zerolog"
)

type LeagueSource interface {
	GetLeagueEntries(ctx context.Context, puuid string) ([]api.LeagueEntry, error)
}

// SharedCache is a second cache tier shared between processes. Misses and
// errors are both treated as "not cached".
type SharedCache interface {
	GetRank(ctx context.Context, puuid string) (Resolved, bool, error)
	SetRank(ctx context.Context, puuid string, r Resolved) error
}

// Recorder receives every rank resolved through the external service.
type Recorder interface {
	RecordRank(ctx context.Context, puuid string, r Resolved) error
}

type FetcherConfig struct {
	QueueType   string
	Pacing      time.Duration
	BackoffBase time.Duration
	MaxAttempts int
}

func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		QueueType:   constants.SoloQueueType,
		Pacing:      constants.RankPacing,
		BackoffBase: constants.RankBackoffBase,
		MaxAttempts: constants.RankMaxAttempts,
	}
}

type Fetcher struct {
	source   LeagueSource
	store    Store
	shared   SharedCache
	recorder Recorder
	cfg      FetcherConfig
	sleep    func(ctx context.Context, d time.Duration) error
	logger   zerolog.Logger
}

type FetcherOption func(*Fetcher)

func WithSharedCache(c SharedCache) FetcherOption {
	return func(f *Fetcher) { f.shared = c }
}

func WithRecorder(r Recorder) FetcherOption {
	return func(f *Fetcher) { f.recorder = r }
}

func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) FetcherOption {
	return func(f *Fetcher) { f.sleep = sleep }
}

func NewFetcher(source LeagueSource, store Store, cfg FetcherConfig, logger zerolog.Logger, opts ...FetcherOption) *Fetcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	f := &Fetcher{
		source: source,
		store:  store,
		cfg:    cfg,
		sleep:  sleepContext,
		logger: logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ResolveAll resolves every puuid one at a time, in order, so the pacing
// interval holds across the whole batch. It never fails: players that cannot
// be resolved come back as Unknown.
func (f *Fetcher) ResolveAll(ctx context.Context, puuids []string) map[string]Resolved {
	result := make(map[string]Resolved, len(puuids))

	for _, puuid := range puuids {
		if r, ok := f.store.Get(puuid); ok {
			result[puuid] = r
			continue
		}
		if r, ok := f.fromShared(ctx, puuid); ok {
			f.store.Put(puuid, r)
			result[puuid] = r
			continue
		}

		r := f.resolve(ctx, puuid)
		if ctx.Err() != nil {
			// an interrupted lookup says nothing about the player
			result[puuid] = Unknown
			continue
		}
		f.store.Put(puuid, r)
		result[puuid] = r
		f.publish(ctx, puuid, r)
	}

	return result
}

func (f *Fetcher) resolve(ctx context.Context, puuid string) Resolved {
	if err := f.sleep(ctx, f.cfg.Pacing); err != nil {
		f.logger.Warn().Err(err).Str("puuid", Redact(puuid)).Msg("rank lookup interrupted")
		return Unknown
	}

	for attempt := 1; ; attempt++ {
		r, err := f.lookup(ctx, puuid)
		if err == nil {
			return r
		}

		if attempt >= f.cfg.MaxAttempts {
			f.logger.Warn().
				Err(err).
				Str("puuid", Redact(puuid)).
				Int("attempts", attempt).
				Msg("failed to fetch rank, giving up")
			return Unknown
		}

		delay := f.cfg.BackoffBase * time.Duration(attempt)
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.RetryAfter > delay {
			delay = min(statusErr.RetryAfter, constants.MaxRetryAfter)
		}

		f.logger.Warn().
			Err(err).
			Str("puuid", Redact(puuid)).
			Int("attempt", attempt).
			Int("max_attempts", f.cfg.MaxAttempts).
			Dur("backoff", delay).
			Msg("rank lookup failed, retrying")

		if err := f.sleep(ctx, delay); err != nil {
			f.logger.Warn().Err(err).Str("puuid", Redact(puuid)).Msg("rank lookup interrupted")
			return Unknown
		}
	}
}

func (f *Fetcher) lookup(ctx context.Context, puuid string) (Resolved, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	entries, err := f.source.GetLeagueEntries(apiCtx, puuid)
	if err != nil {
		return Resolved{}, err
	}
	return f.fromEntries(entries)
}

func (f *Fetcher) fromEntries(entries []api.LeagueEntry) (Resolved, error) {
	for _, e := range entries {
		if e.QueueType != f.cfg.QueueType {
			continue
		}
		r, err := FromEntry(e.Tier, e.Rank)
		if err != nil {
			return Resolved{}, fmt.Errorf("malformed %s entry: %w", e.QueueType, err)
		}
		return Ranked(r), nil
	}
	return Unranked, nil
}

// Observe stores a rank from league entries the caller already fetched.
func (f *Fetcher) Observe(ctx context.Context, puuid string, entries []api.LeagueEntry) (Resolved, error) {
	r, err := f.fromEntries(entries)
	if err != nil {
		return Resolved{}, err
	}
	f.store.Put(puuid, r)
	f.publish(ctx, puuid, r)
	return r, nil
}

func (f *Fetcher) fromShared(ctx context.Context, puuid string) (Resolved, bool) {
	if f.shared == nil {
		return Resolved{}, false
	}
	r, ok, err := f.shared.GetRank(ctx, puuid)
	if err != nil {
		f.logger.Debug().Err(err).Str("puuid", Redact(puuid)).Msg("shared rank cache read failed")
		return Resolved{}, false
	}
	return r, ok && r.Valid()
}

func (f *Fetcher) publish(ctx context.Context, puuid string, r Resolved) {
	// Unknown is a transient failure, not a placement: it stays in this process only.
	if r.State == StateUnknown {
		return
	}
	if f.shared != nil {
		if err := f.shared.SetRank(ctx, puuid, r); err != nil {
			f.logger.Debug().Err(err).Str("puuid", Redact(puuid)).Msg("shared rank cache write failed")
		}
	}
	if f.recorder != nil {
		if err := f.recorder.RecordRank(ctx, puuid, r); err != nil {
			f.logger.Warn().Err(err).Str("puuid", Redact(puuid)).Msg("failed to record rank history")
		}
	}
}

// Redact keeps a short prefix of a player id for logs.
func Redact(puuid string) string {
	n := constants.RedactedIDLength
	if len(puuid) <= n {
		n = len(puuid) / 2
	}
	return puuid[:n] + "..."
}
