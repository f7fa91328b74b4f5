package api

import (
	"fmt"
	"lol-tracker/internal/domain"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
)

// StatusError is a non-200 answer from the Riot API.
type StatusError struct {
	StatusCode int
	RetryAfter time.Duration
}

func newStatusError(resp *fasthttp.Response) *StatusError {
	e := &StatusError{StatusCode: resp.StatusCode()}
	if v := string(resp.Header.Peek("Retry-After")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			e.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return e
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot API error: %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == fasthttp.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == fasthttp.StatusTooManyRequests:
		return domain.ErrRateLimited
	case e.StatusCode >= 500:
		return domain.ErrUpstreamUnavailable
	default:
		return nil
	}
}
