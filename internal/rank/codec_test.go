package rank_test

import (
	"lol-tracker/internal/domain"
	"lol-tracker/internal/rank"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		tier     rank.Tier
		division rank.Division
		want     int
	}{
		{"iron IV is the floor", rank.TierIron, rank.DivisionIV, 4},
		{"iron I", rank.TierIron, rank.DivisionI, 7},
		{"gold II", rank.TierGold, rank.DivisionII, 18},
		{"platinum IV", rank.TierPlatinum, rank.DivisionIV, 20},
		{"emerald III", rank.TierEmerald, rank.DivisionIII, 25},
		{"diamond I", rank.TierDiamond, rank.DivisionI, 31},
		{"master", rank.TierMaster, rank.NoDivision, 32},
		{"grandmaster", rank.TierGrandmaster, rank.NoDivision, 36},
		{"challenger is the ceiling", rank.TierChallenger, rank.NoDivision, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rank.Encode(tt.tier, tt.division)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		tier     rank.Tier
		division rank.Division
	}{
		{"zero tier", rank.Tier(0), rank.DivisionIV},
		{"tier above challenger", rank.Tier(11), rank.NoDivision},
		{"division on apex tier", rank.TierMaster, rank.DivisionI},
		{"missing division", rank.TierGold, rank.NoDivision},
		{"division out of range", rank.TierGold, rank.Division(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rank.Encode(tt.tier, tt.division)
			assert.ErrorIs(t, err, domain.ErrInvalidRank)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("round trips every ordinal", func(t *testing.T) {
		for ordinal := rank.MinOrdinal; ordinal <= rank.MaxOrdinal; ordinal++ {
			r, err := rank.Decode(ordinal)
			require.NoError(t, err)
			if r.Tier.Apex() {
				assert.Equal(t, int(r.Tier)*4, r.Ordinal())
				continue
			}
			assert.Equal(t, ordinal, r.Ordinal())
		}
	})

	t.Run("apex remainder is ignored", func(t *testing.T) {
		for _, ordinal := range []int{32, 33, 34, 35} {
			r, err := rank.Decode(ordinal)
			require.NoError(t, err)
			assert.Equal(t, rank.Rank{Tier: rank.TierMaster}, r)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, ordinal := range []int{-1, 0, 3, 41, 100} {
			_, err := rank.Decode(ordinal)
			assert.ErrorIs(t, err, domain.ErrInvalidRank, "ordinal %d", ordinal)
		}
	})
}

func TestRank_Format(t *testing.T) {
	assert.Equal(t, "Gold 2", rank.Rank{Tier: rank.TierGold, Division: rank.DivisionII}.Format())
	assert.Equal(t, "Iron 4", rank.Rank{Tier: rank.TierIron, Division: rank.DivisionIV}.Format())
	assert.Equal(t, "Master", rank.Rank{Tier: rank.TierMaster}.Format())
	assert.Equal(t, "Grandmaster", rank.Rank{Tier: rank.TierGrandmaster}.Format())
	assert.Equal(t, "", rank.Rank{}.Format())
}

func TestRank_String(t *testing.T) {
	assert.Equal(t, "GOLD II", rank.Rank{Tier: rank.TierGold, Division: rank.DivisionII}.String())
	assert.Equal(t, "CHALLENGER", rank.Rank{Tier: rank.TierChallenger}.String())
}

func TestFromEntry(t *testing.T) {
	t.Run("roman division", func(t *testing.T) {
		r, err := rank.FromEntry("EMERALD", "III")
		require.NoError(t, err)
		assert.Equal(t, 25, r.Ordinal())
	})

	t.Run("apex drops division", func(t *testing.T) {
		r, err := rank.FromEntry("GRANDMASTER", "I")
		require.NoError(t, err)
		assert.Equal(t, rank.Rank{Tier: rank.TierGrandmaster}, r)
	})

	t.Run("apex without division", func(t *testing.T) {
		r, err := rank.FromEntry("MASTER", "")
		require.NoError(t, err)
		assert.Equal(t, rank.Rank{Tier: rank.TierMaster}, r)
	})

	t.Run("apex rejects other divisions", func(t *testing.T) {
		for _, division := range []string{"FOO", "IV", "7", "garbage"} {
			_, err := rank.FromEntry("MASTER", division)
			assert.ErrorIs(t, err, domain.ErrInvalidRank, "division %q", division)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := rank.FromEntry("WOOD", "I")
		assert.ErrorIs(t, err, domain.ErrInvalidRank)
	})

	t.Run("unknown division", func(t *testing.T) {
		_, err := rank.FromEntry("GOLD", "V")
		assert.ErrorIs(t, err, domain.ErrInvalidRank)
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want rank.Resolved
	}{
		{"GOLD II", rank.Ranked(rank.Rank{Tier: rank.TierGold, Division: rank.DivisionII})},
		{"gold ii", rank.Ranked(rank.Rank{Tier: rank.TierGold, Division: rank.DivisionII})},
		{"Gold 2", rank.Ranked(rank.Rank{Tier: rank.TierGold, Division: rank.DivisionII})},
		{"CHALLENGER", rank.Ranked(rank.Rank{Tier: rank.TierChallenger})},
		{"MASTER I", rank.Ranked(rank.Rank{Tier: rank.TierMaster})},
		{"UNRANKED", rank.Unranked},
		{"unknown", rank.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := rank.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("gold II encodes to 18", func(t *testing.T) {
		got, err := rank.Parse("GOLD II")
		require.NoError(t, err)
		assert.Equal(t, 18, got.Rank.Ordinal())
	})

	t.Run("challenger encodes to 40", func(t *testing.T) {
		got, err := rank.Parse("CHALLENGER")
		require.NoError(t, err)
		assert.Equal(t, 40, got.Rank.Ordinal())
	})

	for _, raw := range []string{"", "GOLD", "WOOD IV", "GOLD II EXTRA", "PLATINUM 5", "MASTER FOO", "CHALLENGER IV", "GRANDMASTER 7"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := rank.Parse(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidRank)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for ordinal := rank.MinOrdinal; ordinal <= rank.MaxOrdinal; ordinal++ {
		r, err := rank.Decode(ordinal)
		require.NoError(t, err)

		fromDisplay, err := rank.Parse(r.Format())
		require.NoError(t, err)
		assert.Equal(t, r, fromDisplay.Rank)

		fromCanonical, err := rank.Parse(rank.Ranked(r).String())
		require.NoError(t, err)
		assert.Equal(t, r, fromCanonical.Rank)
	}

	for _, sentinel := range []rank.Resolved{rank.Unranked, rank.Unknown} {
		got, err := rank.Parse(sentinel.String())
		require.NoError(t, err)
		assert.Equal(t, sentinel, got)
	}
}

func TestResolved(t *testing.T) {
	assert.False(t, rank.Resolved{}.Valid())
	assert.True(t, rank.Unranked.Valid())
	assert.True(t, rank.Unknown.Valid())
	assert.False(t, rank.Ranked(rank.Rank{}).Valid())

	gold := rank.Ranked(rank.Rank{Tier: rank.TierGold, Division: rank.DivisionI})
	assert.True(t, gold.IsRanked())
	assert.Equal(t, "Gold 1", gold.Display())
	assert.Equal(t, "", rank.Unranked.Display())
	assert.Equal(t, "", rank.Unknown.Display())
}
