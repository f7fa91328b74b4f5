package rank

type State int

const (
	StateRanked State = iota + 1
	StateUnranked
	StateUnknown
)

const (
	unrankedToken = "UNRANKED"
	unknownToken  = "UNKNOWN"
)

func (s State) String() string {
	switch s {
	case StateRanked:
		return "RANKED"
	case StateUnranked:
		return unrankedToken
	case StateUnknown:
		return unknownToken
	default:
		return "INVALID"
	}
}

// Resolved is the outcome of resolving one player's rank. The zero value is
// not a valid outcome and is never stored.
type Resolved struct {
	State State
	Rank  Rank
}

var (
	Unranked = Resolved{State: StateUnranked}
	Unknown  = Resolved{State: StateUnknown}
)

func Ranked(r Rank) Resolved {
	return Resolved{State: StateRanked, Rank: r}
}

func (r Resolved) Valid() bool {
	switch r.State {
	case StateRanked:
		return r.Rank.Tier.Valid()
	case StateUnranked, StateUnknown:
		return true
	}
	return false
}

func (r Resolved) IsRanked() bool {
	return r.State == StateRanked
}

// Display is the formatted rank, or "" when there is no placement to show.
func (r Resolved) Display() string {
	if r.State != StateRanked {
		return ""
	}
	return r.Rank.Format()
}

// String is the canonical upstream form, readable by Parse.
func (r Resolved) String() string {
	if r.State == StateRanked {
		return r.Rank.String()
	}
	return r.State.String()
}
