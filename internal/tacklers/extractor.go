// Package tacklers extracts the top-tacklers leaderboard. It prefers the
// locally generated stats file and only falls back to the live Sofascore
// scrape when the file is absent.
package tacklers

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/superlig-stats/internal/metrics"
	"github.com/mauv0809/superlig-stats/internal/sofascore"
	"github.com/mauv0809/superlig-stats/internal/table"
)

// ColTackles is the ranking metric of this extractor.
const ColTackles = "tackles"

// OutputColumns is the fixed column order of every extractor result.
var OutputColumns = []string{
	table.ColPlayer, table.ColTeam, "age", ColTackles, "position", "nationality",
}

// Extractor produces top-tacklers tables.
type Extractor struct {
	loader  *table.Loader
	client  sofascore.Client
	metrics metrics.Metrics
	csvPath string
	league  string
}

// New creates an Extractor. client may be nil to disable the scrape
// fallback entirely.
func New(loader *table.Loader, client sofascore.Client, metricsSvc metrics.Metrics, csvPath, league string) *Extractor {
	return &Extractor{
		loader:  loader,
		client:  client,
		metrics: metricsSvc,
		csvPath: csvPath,
		league:  league,
	}
}

// TopTacklers returns the topN players by tackle count for the season,
// optionally bounded by an inclusive age range. Unlike the dashboard's
// filter pipeline, rows with a missing age pass the bounds here: scraped
// rows frequently lack an age and dropping them would hide real tacklers.
//
// The result always carries OutputColumns in order; position and
// nationality are present even when no source had them.
func (e *Extractor) TopTacklers(season string, topN int, minAge, maxAge *int) (*table.Table, error) {
	if _, err := os.Stat(e.csvPath); err == nil {
		return e.fromFile(topN, minAge, maxAge)
	}
	log.Warn("Local stats file not found, falling back to live scrape", "path", e.csvPath, "season", season)
	return e.fromScrape(season, topN, minAge, maxAge)
}

// fromFile is the fast path: the pre-joined local table.
func (e *Extractor) fromFile(topN int, minAge, maxAge *int) (*table.Table, error) {
	loaded, err := e.loader.Load(e.csvPath)
	if err != nil {
		return nil, err
	}
	e.metrics.IncTableLoads()

	work := loaded.Copy()
	ageCol, hasAge := table.ResolveAgeColumn(work)
	if hasAge {
		work = table.FilterAgeRangePermissive(work, ageCol, minAge, maxAge)
	}
	work = work.Where(func(row table.Row) bool {
		return row[ColTackles].Valid
	})
	work.SortByColumn(ColTackles, false)
	work.Head(topN)

	if hasAge {
		work.RenameColumn(ageCol, "age")
	}
	for _, col := range []string{"position", "nationality"} {
		work.AddColumn(col)
	}
	return work.Select(OutputColumns...), nil
}

// fromScrape is the fallback path: league stats plus a per-player
// enrichment pass. Individual enrichment failures are tolerated; the row
// simply keeps missing fields.
func (e *Extractor) fromScrape(season string, topN int, minAge, maxAge *int) (*table.Table, error) {
	if e.client == nil {
		return nil, fmt.Errorf("stats file %s does not exist and no scrape client is configured", e.csvPath)
	}
	e.metrics.IncScrapeFallbacks()

	work, err := e.client.LeagueStats(season, e.league, sofascore.AccumulationTotal)
	if err != nil {
		var missing *sofascore.MissingFieldError
		if errors.As(err, &missing) {
			// The exact failure mode Sofascore has shipped before: an
			// expected key vanished from the response. Tell the caller
			// what happened and how to get unblocked.
			return nil, fmt.Errorf(
				"sofascore league stats fetch failed (missing %q key in API response); "+
					"the upstream API has likely changed shape. Either retry later or "+
					"generate the local stats file %s and the extractor will load from it instead: %w",
				missing.Field, e.csvPath, err)
		}
		return nil, fmt.Errorf("failed to fetch league stats for %s %s: %w", e.league, season, err)
	}

	work = work.Where(func(row table.Row) bool {
		return row[ColTackles].Valid
	})
	for _, col := range []string{"age", "position", "nationality"} {
		work.AddColumn(col)
	}

	// One lookup per distinct player name; a failed lookup is cached so
	// a player appearing twice is not retried.
	infos := make(map[string]*sofascore.PlayerInfo)
	for _, row := range work.Rows {
		name := row[table.ColPlayer].Text
		info, seen := infos[name]
		if !seen {
			fetched, err := e.client.PlayerInfo(name)
			if err != nil {
				log.Warn("Skipping player enrichment", "player", name, "error", err)
				infos[name] = nil
				continue
			}
			info = &fetched
			infos[name] = info
		}
		if info == nil {
			continue
		}
		if info.Age != nil {
			row["age"] = table.Num(float64(*info.Age))
		}
		if info.Position != "" {
			row["position"] = table.Text(info.Position)
		}
		if info.Nationality != "" {
			row["nationality"] = table.Text(info.Nationality)
		}
	}

	work = table.FilterAgeRangePermissive(work, "age", minAge, maxAge)
	work.SortByColumn(ColTackles, false)
	work.Head(topN)
	return work.Select(OutputColumns...), nil
}
