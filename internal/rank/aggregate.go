package rank

import "math"

var fallbackRank = Rank{Tier: TierGold, Division: DivisionIV}

// Average is the representative rank of a group, read from the store only.
// Players without a placement are skipped; false means nobody had one.
func Average(store Store, puuids []string) (Rank, bool) {
	sum, count := 0, 0
	for _, puuid := range puuids {
		r, ok := store.Get(puuid)
		if !ok || !r.IsRanked() {
			continue
		}
		ordinal, err := Encode(r.Rank.Tier, r.Rank.Division)
		if err != nil {
			continue
		}
		sum += ordinal
		count++
	}
	if count == 0 {
		return Rank{}, false
	}

	// half away from zero
	avg := int(math.Round(float64(sum) / float64(count)))
	tier := min(max(avg/4, int(TierIron)), int(TierChallenger))

	decoded, err := Decode(tier*4 + avg%4)
	if err != nil {
		return fallbackRank, true
	}
	return decoded, true
}
