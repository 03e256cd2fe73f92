package sofascore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/mauv0809/superlig-stats/internal/table"
)

// APIClient scrapes Sofascore's undocumented endpoints directly.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a Sofascore client.
func NewClient() *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    "https://api.sofascore.com",
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// leagueStatsResponse mirrors the subset of the league-stats payload we
// consume. Statistics come back as loosely-typed maps; values are
// normalized through extractValue.
type leagueStatsResponse struct {
	Seasons []struct {
		Year    string `json:"year"`
		Players []struct {
			Player     string         `json:"player"`
			Team       string         `json:"team"`
			Position   string         `json:"position"`
			Statistics map[string]any `json:"statistics"`
		} `json:"players"`
	} `json:"seasons"`
}

// LeagueStats fetches accumulated player stats for a league season and
// shapes them into a stats table with one row per player.
func (c *APIClient) LeagueStats(season, league, accumulation string) (*table.Table, error) {
	params := url.Values{}
	params.Set("season", season)
	params.Set("league", league)
	params.Set("accumulation", accumulation)

	body, err := c.get("/api/v1/league-stats?" + params.Encode())
	if err != nil {
		return nil, err
	}

	// Decode the envelope loosely first: the upstream has dropped the
	// "seasons" key before, and that must surface as a structural error
	// rather than an empty table.
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode league stats response: %w", err)
	}
	if _, ok := envelope["seasons"]; !ok {
		return nil, &MissingFieldError{Field: "seasons"}
	}

	var payload leagueStatsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode league stats response: %w", err)
	}
	if len(payload.Seasons) == 0 {
		return nil, fmt.Errorf("no seasons returned for %s %s", league, season)
	}

	players := payload.Seasons[0].Players
	log.Info("Fetched league stats", "league", league, "season", season, "players", len(players))

	// Column order: identifiers first, then position, then the union of
	// stat keys sorted for determinism.
	statCols := map[string]struct{}{}
	for _, p := range players {
		for k := range p.Statistics {
			statCols[k] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(statCols))
	for k := range statCols {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	t := &table.Table{Columns: append([]string{table.ColPlayer, table.ColTeam, "position"}, sorted...)}
	for _, p := range players {
		row := table.Row{
			table.ColPlayer: table.Text(p.Player),
			table.ColTeam:   table.Text(p.Team),
			"position":      table.Text(p.Position),
		}
		for k, v := range p.Statistics {
			if f, ok := extractValue(v); ok {
				row[k] = table.Num(f)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// PlayerInfo scrapes a player's public page and pulls age, position and
// nationality out of the details list.
func (c *APIClient) PlayerInfo(playerName string) (PlayerInfo, error) {
	body, err := c.get("/player/" + url.PathEscape(playerName))
	if err != nil {
		return PlayerInfo{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return PlayerInfo{}, fmt.Errorf("failed to parse player page for %s: %w", playerName, err)
	}

	var info PlayerInfo
	doc.Find(".player-details li").Each(func(_ int, s *goquery.Selection) {
		label := strings.TrimSpace(s.Find(".label").Text())
		value := strings.TrimSpace(s.Find(".value").Text())
		switch strings.ToLower(label) {
		case "age":
			if age, err := strconv.Atoi(value); err == nil {
				info.Age = &age
			}
		case "position":
			info.Position = value
		case "nationality":
			info.Nationality = value
		}
	})

	if info.Position == "" && info.Nationality == "" && info.Age == nil {
		return PlayerInfo{}, fmt.Errorf("no player details found for %s", playerName)
	}
	log.Debug("Scraped player info", "player", playerName, "position", info.Position, "nationality", info.Nationality)
	return info, nil
}

// get performs a GET against the Sofascore base URL and returns the body.
func (c *APIClient) get(path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent", "superlig-stats/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from Sofascore", "status", resp.StatusCode, "path", path)
		return nil, fmt.Errorf("received non-OK HTTP status %d for %s", resp.StatusCode, path)
	}
	return body, nil
}

// extractValue normalizes a stat value from the loosely-typed statistics
// map. Some endpoints return flat numbers, others nest aggregates like
// {"total": 15, "won": 9}.
func extractValue(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]any:
		for _, key := range []string{"total", "all", "count", "average"} {
			if inner, exists := v[key]; exists && inner != nil {
				return extractValue(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}
