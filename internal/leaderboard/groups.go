package leaderboard

import "strings"

// GroupMetric is one ranked metric inside a card group. Percentage metrics
// are already rates, so the dashboard never applies per-90 to them.
type GroupMetric struct {
	Name       string
	Percentage bool
}

// Group is a themed set of metrics rendered as one block of cards.
type Group struct {
	Name    string
	Metrics []GroupMetric
}

// Groups returns the metric layout of the dashboard, in display order.
// Metrics absent from the loaded table are skipped at build time.
func Groups() []Group {
	return []Group{
		{
			Name: "Attacking",
			Metrics: []GroupMetric{
				{Name: "goals"},
				{Name: "assists"},
				{Name: "totalShots"},
				{Name: "shotsOnTarget"},
				{Name: "expectedGoals"},
			},
		},
		{
			Name: "Possession & Passing",
			Metrics: []GroupMetric{
				{Name: "accuratePassesPercentage", Percentage: true},
				{Name: "keyPasses"},
				{Name: "accurateFinalThirdPasses"},
				{Name: "accurateLongBallsPercentage", Percentage: true},
			},
		},
		{
			Name: "Defending",
			Metrics: []GroupMetric{
				{Name: "tackles"},
				{Name: "interceptions"},
				{Name: "clearances"},
				{Name: "groundDuelsWon"},
				{Name: "groundDuelsWonPercentage", Percentage: true},
				{Name: "totalDuelsWon"},
				{Name: "totalDuelsWonPercentage", Percentage: true},
			},
		},
	}
}

// CardTitle is the human heading for a metric card; percentage metrics
// read as "... %" instead of the raw Percentage suffix.
func CardTitle(metric string) string {
	return PrettyLabel(strings.ReplaceAll(metric, "Percentage", " %"))
}
