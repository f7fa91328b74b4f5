package server

import (
	"encoding/json"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *TrackerServer) handleGetSummoner(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	refresh, _ := strconv.ParseBool(q.Get("refresh"))

	summoner, err := s.summoners.GetSummoner(r.Context(), q.Get("gameName"), q.Get("tagLine"), refresh)
	if err != nil {
		s.writeError(w, r, err, "GetSummoner")
		return
	}
	writeJSON(w, http.StatusOK, toSummonerResponse(summoner))
}

func (s *TrackerServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	players, err := s.summoners.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err, "SearchSuggestions")
		return
	}
	writeJSON(w, http.StatusOK, toSuggestions(players))
}

func (s *TrackerServer) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, ok := intParam(w, q.Get("start"), 0)
	if !ok {
		return
	}
	count, ok := intParam(w, q.Get("count"), constants.DefaultMatchCount)
	if !ok {
		return
	}
	queue, ok := intParam(w, q.Get("queue"), 0)
	if !ok {
		return
	}

	records, err := s.matches.GetMatches(r.Context(), service.MatchQuery{
		Puuid: chi.URLParam(r, "puuid"),
		Start: start,
		Count: count,
		Queue: queue,
		Type:  q.Get("type"),
	})
	if err != nil {
		s.writeError(w, r, err, "GetMatches")
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponses(records))
}

func (s *TrackerServer) handleGetTiers(w http.ResponseWriter, r *http.Request) {
	var puuids []string
	if err := json.NewDecoder(r.Body).Decode(&puuids); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request body must be a JSON array of puuids"})
		return
	}

	result, err := s.tiers.GetTiers(r.Context(), puuids)
	if err != nil {
		s.writeError(w, r, err, "GetTiers")
		return
	}
	writeJSON(w, http.StatusOK, TiersResponse{Tiers: result.Tiers, AverageTier: result.AverageTier})
}

func (s *TrackerServer) handleTierHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(w, r.URL.Query().Get("limit"), constants.RankHistoryLimit)
	if !ok {
		return
	}

	snapshots, err := s.tiers.History(r.Context(), chi.URLParam(r, "puuid"), limit)
	if err != nil {
		s.writeError(w, r, err, "TierHistory")
		return
	}
	writeJSON(w, http.StatusOK, toRankSnapshots(snapshots))
}

func (s *TrackerServer) writeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	logFailure(r.Context(), err, op)
	m := classify(err)
	writeJSON(w, m.status, map[string]string{"error": m.message})
}

func intParam(w http.ResponseWriter, raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid integer parameter: " + raw})
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
