package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/superlig-stats/internal/dashboard"
	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/table"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// LeaderboardsHandler builds dashboard cards. With a 'metric' parameter it
// returns that single card and persists a snapshot of it; without one it
// returns every card the stats table supports.
func (s *Server) LeaderboardsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := parseFilters(r)

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			cards, err := s.Dashboard.Cards(filters)
			if err != nil {
				log.Error("Failed to build dashboard cards", "error", err)
				http.Error(w, "Failed to build leaderboards", http.StatusInternalServerError)
				return
			}
			writeJSON(w, map[string]any{"cards": cards})
			return
		}

		card, err := s.Dashboard.Card(metric, filters)
		if err != nil {
			log.Error("Failed to build leaderboard", "metric", metric, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		summary := filterSummary(filters)
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Skipping snapshot save", "metric", metric)
		} else if id, err := s.Store.Save(card.Board, summary); err != nil {
			// The board was built fine; a failed snapshot should not fail
			// the request.
			log.Error("Failed to save snapshot", "metric", metric, "error", err)
		} else {
			log.Debug("Saved snapshot", "id", id, "metric", metric)
		}

		writeJSON(w, card)
	}
}

// TacklersHandler returns the top tacklers for a season, falling back to
// the live scrape when the stats file is absent.
func (s *Server) TacklersHandler() http.HandlerFunc {
	type response struct {
		Season  string     `json:"season"`
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		season := r.URL.Query().Get("season")
		if season == "" {
			season = s.Cfg.Season
		}
		topN := 15
		if v := r.URL.Query().Get("top_n"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				http.Error(w, "Invalid 'top_n' parameter", http.StatusBadRequest)
				return
			}
			topN = parsed
		}

		top, err := s.Tacklers.TopTacklers(season, topN, intParam(r, "age_min"), intParam(r, "age_max"))
		if err != nil {
			log.Error("Failed to extract top tacklers", "season", season, "error", err)
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		resp := response{Season: season, Columns: top.Columns, Rows: make([][]string, 0, top.Len())}
		for _, row := range top.Rows {
			cells := make([]string, 0, len(top.Columns))
			for _, col := range top.Columns {
				if table.IsIdentifier(col) || col == "position" || col == "nationality" {
					cells = append(cells, row[col].Text)
					continue
				}
				cells = append(cells, leaderboard.FormatNumber(row[col]))
			}
			resp.Rows = append(resp.Rows, cells)
		}
		writeJSON(w, resp)
	}
}

// NotifyLeaderboardHandler builds one card and posts it via the notifier.
func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			http.Error(w, "No notifier is configured", http.StatusServiceUnavailable)
			return
		}

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			http.Error(w, "Missing 'metric' parameter", http.StatusBadRequest)
			return
		}

		filters := parseFilters(r)
		card, err := s.Dashboard.Card(metric, filters)
		if err != nil {
			log.Error("Failed to build leaderboard for notification", "metric", metric, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.Notifier.SendBoard(card.Board, filterSummary(filters), isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send leaderboard notification", "metric", metric, "error", err)
			http.Error(w, "Failed to send notification", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Notified leaderboard for %s!", metric)
	}
}

// SnapshotsHandler lists persisted snapshots or clears them all.
func (s *Server) SnapshotsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			if err := s.Store.Clear(); err != nil {
				log.Error("Failed to clear snapshots", "error", err)
				http.Error(w, "Failed to clear snapshots", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Snapshots cleared!")
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 {
				http.Error(w, "Invalid 'limit' parameter", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		snaps, err := s.Store.List(limit)
		if err != nil {
			log.Error("Failed to list snapshots", "error", err)
			http.Error(w, "Failed to list snapshots", http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"snapshots": snaps})
	}
}

// ReloadHandler drops the cached stats table so the next request re-reads
// the file from disk.
func (s *Server) ReloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Invalidating cached stats table", "path", s.Cfg.StatsCSV)
		s.Loader.Invalidate(s.Cfg.StatsCSV)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Stats table reloaded!")
	}
}

// parseFilters reads the dashboard filter parameters from the query string.
func parseFilters(r *http.Request) dashboard.Filters {
	f := dashboard.Filters{
		Nationality: dashboard.NationalityAll,
		MinAge:      intParam(r, "age_min"),
		MaxAge:      intParam(r, "age_max"),
		Per90:       r.URL.Query().Get("per90") == "true",
	}
	if v := r.URL.Query().Get("min_minutes"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			f.MinMinutes = parsed
		} else {
			log.Warn("Invalid 'min_minutes' parameter provided. Defaulting to 0.", "min_minutes_param", v)
		}
	}
	switch r.URL.Query().Get("nationality") {
	case "domestic":
		f.Nationality = dashboard.NationalityDomestic
	case "foreign":
		f.Nationality = dashboard.NationalityForeign
	}
	return f
}

func intParam(r *http.Request, name string) *int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("Invalid integer parameter ignored", "param", name, "value", v)
		return nil
	}
	return &parsed
}

// filterSummary renders the filters as the human-readable string stored
// alongside snapshots.
func filterSummary(f dashboard.Filters) string {
	var parts []string
	if f.MinMinutes > 0 {
		parts = append(parts, fmt.Sprintf("minutes>=%d", f.MinMinutes))
	}
	if f.MinAge != nil {
		parts = append(parts, fmt.Sprintf("age>=%d", *f.MinAge))
	}
	if f.MaxAge != nil {
		parts = append(parts, fmt.Sprintf("age<=%d", *f.MaxAge))
	}
	if f.Nationality != "" && f.Nationality != dashboard.NationalityAll {
		parts = append(parts, fmt.Sprintf("nationality=%s", f.Nationality))
	}
	if f.Per90 {
		parts = append(parts, "per90")
	}
	return strings.Join(parts, " ")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode JSON response", "error", err)
	}
}
