package rank_test

import (
	"lol-tracker/internal/rank"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	mustParse := func(raw string) rank.Resolved {
		r, err := rank.Parse(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		return r
	}

	tests := []struct {
		name    string
		ranks   map[string]string
		want    string
		wantOK  bool
		players []string
	}{
		{
			name:    "gold II and platinum II meet at platinum IV",
			ranks:   map[string]string{"a": "GOLD II", "b": "PLATINUM II"},
			players: []string{"a", "b"},
			want:    "Platinum 4",
			wantOK:  true,
		},
		{
			name:    "half rounds away from zero",
			ranks:   map[string]string{"a": "GOLD IV", "b": "GOLD III"},
			players: []string{"a", "b"},
			want:    "Gold 3",
			wantOK:  true,
		},
		{
			name:    "unranked and unknown are skipped",
			ranks:   map[string]string{"a": "SILVER I", "b": "UNRANKED", "c": "UNKNOWN"},
			players: []string{"a", "b", "c", "missing"},
			want:    "Silver 1",
			wantOK:  true,
		},
		{
			name:    "apex tiers average without divisions",
			ranks:   map[string]string{"a": "MASTER", "b": "CHALLENGER"},
			players: []string{"a", "b"},
			want:    "Grandmaster",
			wantOK:  true,
		},
		{
			name:    "lands inside master",
			ranks:   map[string]string{"a": "DIAMOND I", "b": "GRANDMASTER"},
			players: []string{"a", "b"},
			want:    "Master",
			wantOK:  true,
		},
		{
			name:    "nobody ranked",
			ranks:   map[string]string{"a": "UNRANKED", "b": "UNKNOWN"},
			players: []string{"a", "b"},
		},
		{
			name: "empty group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := rank.NewMemoryStore(rank.StoreOptions{})
			for puuid, raw := range tt.ranks {
				store.Put(puuid, mustParse(raw))
			}

			got, ok := rank.Average(store, tt.players)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Format())
			}
		})
	}
}
