package constants

import "time"

const (
	SoloQueueType    = "RANKED_SOLO_5x5"
	RankPacing       = 50 * time.Millisecond
	RankBackoffBase  = 2000 * time.Millisecond
	RankMaxAttempts  = 3
	RedactedIDLength = 8
	MaxRetryAfter    = 30 * time.Second
)

const (
	PlayerRefreshTTL = 5 * time.Minute
	RankSharedTTL    = 30 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SearchSuggestionLimit = 10
	DefaultMatchCount     = 20
	MaxMatchCount         = 100
	MatchFetchConcurrency = 4
	MaxTierBatchSize      = 50
	RankHistoryLimit      = 50

	// a bounded rank store must hold several full tier batches per shard
	MinRankCacheSize = 1024
	MinRankCacheTTL  = time.Minute
)
