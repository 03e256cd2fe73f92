package sofascore

import "github.com/mauv0809/superlig-stats/internal/table"

// Client is the narrow boundary to the Sofascore scrape path. It is an
// unreliable external collaborator: keep it behind this interface so it
// can be stubbed entirely in tests and swapped when the upstream drifts.
type Client interface {
	// LeagueStats fetches accumulated player statistics for a league
	// season as a stats table. A *MissingFieldError means the upstream
	// response shape changed.
	LeagueStats(season, league, accumulation string) (*table.Table, error)
	// PlayerInfo scrapes a single player's page for age, position and
	// nationality.
	PlayerInfo(playerName string) (PlayerInfo, error)
}
