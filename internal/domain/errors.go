package domain

import "errors"

var (
	ErrInvalidRank         = errors.New("invalid rank")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited by upstream")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// request validation
var (
	ErrInvalidRiotID  = errors.New("game name and tag line are required")
	ErrInvalidPaging  = errors.New("start must be >= 0 and count between 1 and 100")
	ErrTooManyPlayers = errors.New("too many players in tier request")
)
