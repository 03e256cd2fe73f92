// Package dashboard wires the filter pipeline to the leaderboard builder
// and produces one card per metric per group, the way the stats dashboard
// lays them out.
package dashboard

import (
	"fmt"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/metrics"
	"github.com/mauv0809/superlig-stats/internal/table"
)

// NationalityFilter is the three-way player-nationality selector.
type NationalityFilter string

const (
	NationalityAll      NationalityFilter = "all"
	NationalityDomestic NationalityFilter = "domestic"
	NationalityForeign  NationalityFilter = "foreign"
)

// Filters are the resolved control-surface values. The core only consumes
// these; widget state lives with the caller.
type Filters struct {
	MinMinutes  int
	MinAge      *int
	MaxAge      *int
	Nationality NationalityFilter
	Per90       bool
}

// Card is one rendered leaderboard with its headings.
type Card struct {
	Group    string             `json:"group"`
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Board    *leaderboard.Board `json:"board"`
}

// Service builds dashboard cards from the configured stats file.
type Service struct {
	loader   *table.Loader
	metrics  metrics.Metrics
	csvPath  string
	domestic string
}

// New creates a dashboard Service. domestic is the country treated as
// "home" by the nationality filter.
func New(loader *table.Loader, metricsSvc metrics.Metrics, csvPath, domestic string) *Service {
	return &Service{
		loader:   loader,
		metrics:  metricsSvc,
		csvPath:  csvPath,
		domestic: domestic,
	}
}

// Cards builds every metric card, grouped per the dashboard layout.
// Metrics the table does not carry are skipped silently.
func (s *Service) Cards(f Filters) ([]Card, error) {
	working, ageCol, err := s.workingTable(f)
	if err != nil {
		return nil, err
	}

	var cards []Card
	for _, group := range leaderboard.Groups() {
		for _, gm := range group.Metrics {
			if !working.HasColumn(gm.Name) {
				continue
			}
			cards = append(cards, s.buildCard(working, ageCol, group.Name, gm, f))
		}
	}
	return cards, nil
}

// Card builds a single metric card. Unlike Cards, asking for a metric the
// table does not carry is an error here: the caller named it explicitly.
func (s *Service) Card(metric string, f Filters) (*Card, error) {
	working, ageCol, err := s.workingTable(f)
	if err != nil {
		return nil, err
	}
	if !working.HasColumn(metric) {
		return nil, fmt.Errorf("metric %q does not exist in %s", metric, s.csvPath)
	}

	gm := leaderboard.GroupMetric{Name: metric}
	group := ""
	for _, g := range leaderboard.Groups() {
		for _, m := range g.Metrics {
			if m.Name == metric {
				gm = m
				group = g.Name
			}
		}
	}
	card := s.buildCard(working, ageCol, group, gm, f)
	return &card, nil
}

// workingTable loads the stats file and applies the global filter
// pipeline: age range first, then nationality. The minutes threshold is
// delegated to the builder.
func (s *Service) workingTable(f Filters) (*table.Table, string, error) {
	loaded, err := s.loader.Load(s.csvPath)
	if err != nil {
		// No fallback exists for the dashboard: a missing stats file is
		// fatal at this boundary.
		return nil, "", err
	}
	s.metrics.IncTableLoads()

	working := loaded
	ageCol, hasAge := table.ResolveAgeColumn(working)
	if hasAge {
		working = table.FilterAgeRange(working, ageCol, f.MinAge, f.MaxAge)
	}

	if working.HasColumn(table.ColCountry) {
		switch f.Nationality {
		case NationalityDomestic:
			working = table.FilterCountryEquals(working, s.domestic)
		case NationalityForeign:
			working = table.FilterCountryNotEquals(working, s.domestic)
		}
	}
	return working, ageCol, nil
}

func (s *Service) buildCard(working *table.Table, ageCol, group string, gm leaderboard.GroupMetric, f Filters) Card {
	var extras []string
	if ageCol != "" {
		extras = append(extras, ageCol)
	}
	if working.HasColumn(table.ColCountry) {
		extras = append(extras, table.ColCountry)
	}

	board := leaderboard.Build(working, gm.Name, leaderboard.Options{
		// Percentage metrics are already rates; per-90 would be noise.
		Per90:      f.Per90 && !gm.Percentage,
		MinMinutes: f.MinMinutes,
		ExtraCols:  extras,
	})
	s.metrics.IncBoardsBuilt()

	title := leaderboard.CardTitle(gm.Name)
	return Card{
		Group:    group,
		Title:    title,
		Subtitle: fmt.Sprintf("Top %d · %s", leaderboard.DefaultLimit, title),
		Board:    board,
	}
}
