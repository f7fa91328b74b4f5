package server

import (
	"errors"
	"fmt"
	"lol-tracker/internal/api"
	"lol-tracker/internal/domain"
	"net/http"

	"connectrpc.com/connect"
)

type errorMapping struct {
	status  int
	code    connect.Code
	message string
}

// classify maps an error to what the caller is allowed to see. Anything not
// recognised becomes a generic internal error with no detail.
func classify(err error) errorMapping {
	switch {
	case errors.Is(err, domain.ErrInvalidRiotID),
		errors.Is(err, domain.ErrInvalidPaging),
		errors.Is(err, domain.ErrTooManyPlayers):
		return errorMapping{http.StatusBadRequest, connect.CodeInvalidArgument, err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return errorMapping{http.StatusNotFound, connect.CodeNotFound, "Summoner not found"}
	case errors.Is(err, domain.ErrRateLimited):
		return errorMapping{http.StatusTooManyRequests, connect.CodeResourceExhausted, "Rate limit exceeded. Please try again later."}
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return errorMapping{http.StatusBadGateway, connect.CodeUnavailable, "Riot API is temporarily unavailable"}
	case errors.Is(err, domain.ErrInvalidRank):
		return errorMapping{http.StatusBadGateway, connect.CodeInternal, "Riot API returned malformed rank data"}
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return errorMapping{
			http.StatusBadGateway,
			connect.CodeUnavailable,
			fmt.Sprintf("Riot API error: %d %s", statusErr.StatusCode, http.StatusText(statusErr.StatusCode)),
		}
	}

	return errorMapping{http.StatusInternalServerError, connect.CodeInternal, "Internal server error"}
}

func toConnectError(err error) *connect.Error {
	m := classify(err)
	return connect.NewError(m.code, errors.New(m.message))
}
