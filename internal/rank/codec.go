package rank

import (
	"fmt"
	"lol-tracker/internal/domain"
	"strings"
)

type Tier int

const (
	TierIron Tier = iota + 1
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
	TierEmerald
	TierDiamond
	TierMaster
	TierGrandmaster
	TierChallenger
)

const (
	MinOrdinal = int(TierIron) * 4
	MaxOrdinal = int(TierChallenger) * 4
)

var tierNames = map[Tier]string{
	TierIron:        "IRON",
	TierBronze:      "BRONZE",
	TierSilver:      "SILVER",
	TierGold:        "GOLD",
	TierPlatinum:    "PLATINUM",
	TierEmerald:     "EMERALD",
	TierDiamond:     "DIAMOND",
	TierMaster:      "MASTER",
	TierGrandmaster: "GRANDMASTER",
	TierChallenger:  "CHALLENGER",
}

var tiersByName = func() map[string]Tier {
	m := make(map[string]Tier, len(tierNames))
	for t, name := range tierNames {
		m[name] = t
	}
	return m
}()

func (t Tier) Valid() bool {
	return t >= TierIron && t <= TierChallenger
}

// Apex tiers have no divisions.
func (t Tier) Apex() bool {
	return t >= TierMaster
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

func (t Tier) displayName() string {
	name := tierNames[t]
	return name[:1] + strings.ToLower(name[1:])
}

type Division int

const (
	NoDivision Division = iota
	DivisionIV
	DivisionIII
	DivisionII
	DivisionI
)

var divisionRoman = map[Division]string{
	DivisionIV:  "IV",
	DivisionIII: "III",
	DivisionII:  "II",
	DivisionI:   "I",
}

var divisionArabic = map[Division]string{
	DivisionIV:  "4",
	DivisionIII: "3",
	DivisionII:  "2",
	DivisionI:   "1",
}

func (d Division) String() string {
	if s, ok := divisionRoman[d]; ok {
		return s
	}
	return ""
}

func parseDivision(token string) (Division, bool) {
	for d, s := range divisionRoman {
		if token == s {
			return d, true
		}
	}
	for d, s := range divisionArabic {
		if token == s {
			return d, true
		}
	}
	return NoDivision, false
}

type Rank struct {
	Tier     Tier
	Division Division
}

// Encode maps a tier and division onto the ordinal scale tier*4 + division,
// where IV counts as 0 and apex tiers always add 0.
func Encode(tier Tier, division Division) (int, error) {
	if !tier.Valid() {
		return 0, fmt.Errorf("%w: unknown tier %d", domain.ErrInvalidRank, int(tier))
	}
	if tier.Apex() {
		if division != NoDivision {
			return 0, fmt.Errorf("%w: %s has no divisions", domain.ErrInvalidRank, tier)
		}
		return int(tier) * 4, nil
	}
	if division < DivisionIV || division > DivisionI {
		return 0, fmt.Errorf("%w: %s requires a division", domain.ErrInvalidRank, tier)
	}
	return int(tier)*4 + int(division-DivisionIV), nil
}

// Decode is the inverse of Encode. The remainder of an apex ordinal is ignored,
// so 32..35 all decode to Master.
func Decode(ordinal int) (Rank, error) {
	if ordinal < MinOrdinal || ordinal > MaxOrdinal {
		return Rank{}, fmt.Errorf("%w: ordinal %d out of range [%d, %d]", domain.ErrInvalidRank, ordinal, MinOrdinal, MaxOrdinal)
	}
	tier := Tier(ordinal / 4)
	if tier.Apex() {
		return Rank{Tier: tier}, nil
	}
	return Rank{Tier: tier, Division: DivisionIV + Division(ordinal%4)}, nil
}

func (r Rank) Ordinal() int {
	ordinal, err := Encode(r.Tier, r.Division)
	if err != nil {
		return 0
	}
	return ordinal
}

// Format renders the display form: "Gold 2", "Master".
func (r Rank) Format() string {
	if !r.Tier.Valid() {
		return ""
	}
	if r.Tier.Apex() {
		return r.Tier.displayName()
	}
	return r.Tier.displayName() + " " + divisionArabic[r.Division]
}

// String renders the upstream form: "GOLD II", "MASTER".
func (r Rank) String() string {
	if r.Tier.Apex() || r.Division == NoDivision {
		return r.Tier.String()
	}
	return r.Tier.String() + " " + r.Division.String()
}

// FromEntry converts the tier/rank pair of a league entry. Upstream sends
// division "I" for apex tiers, which is dropped; any other apex division fails.
func FromEntry(tier, division string) (Rank, error) {
	t, ok := tiersByName[strings.ToUpper(strings.TrimSpace(tier))]
	if !ok {
		return Rank{}, fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidRank, tier)
	}
	token := strings.ToUpper(strings.TrimSpace(division))
	if t.Apex() {
		if d, ok := parseDivision(token); token != "" && (!ok || d != DivisionI) {
			return Rank{}, fmt.Errorf("%w: unexpected division %q for %s", domain.ErrInvalidRank, division, t)
		}
		return Rank{Tier: t}, nil
	}
	d, ok := parseDivision(token)
	if !ok {
		return Rank{}, fmt.Errorf("%w: unknown division %q for %s", domain.ErrInvalidRank, division, t)
	}
	return Rank{Tier: t, Division: d}, nil
}

// Parse reads "GOLD II", "CHALLENGER", "MASTER I", the display form "Gold 2",
// or the sentinels "UNRANKED" and "UNKNOWN".
func Parse(raw string) (Resolved, error) {
	fields := strings.Fields(strings.ToUpper(raw))
	switch len(fields) {
	case 1:
		switch fields[0] {
		case unrankedToken:
			return Unranked, nil
		case unknownToken:
			return Unknown, nil
		}
		t, ok := tiersByName[fields[0]]
		if !ok {
			return Resolved{}, fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidRank, raw)
		}
		if !t.Apex() {
			return Resolved{}, fmt.Errorf("%w: %s requires a division", domain.ErrInvalidRank, t)
		}
		return Ranked(Rank{Tier: t}), nil
	case 2:
		r, err := FromEntry(fields[0], fields[1])
		if err != nil {
			return Resolved{}, err
		}
		return Ranked(r), nil
	default:
		return Resolved{}, fmt.Errorf("%w: cannot parse %q", domain.ErrInvalidRank, raw)
	}
}
