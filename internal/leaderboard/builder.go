package leaderboard

import (
	"strconv"

	"github.com/mauv0809/superlig-stats/internal/table"
)

// rankHeader is the first column of every board.
const rankHeader = "Rk"

// Build ranks a table by metric and returns the display board. The metric
// must name an existing numeric column; callers skip absent metrics before
// calling. The source table is never mutated.
func Build(t *table.Table, metric string, opts Options) *Board {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	work := t.Copy()

	if work.HasColumn(table.ColMinutesPlayed) && opts.MinMinutes > 0 {
		work = work.Where(func(row table.Row) bool {
			m := row[table.ColMinutesPlayed]
			return m.Valid && m.Num >= float64(opts.MinMinutes)
		})
	}

	// The ranking column is either the raw metric or a derived per-90
	// rate. Division by zero or missing minutes leaves the rate missing;
	// such rows sort last either direction.
	rankCol := metric
	if opts.Per90 && work.HasColumn(table.ColMinutesPlayed) {
		rankCol = metric + "_per90"
		work.AddColumn(rankCol)
		for _, row := range work.Rows {
			v, m := row[metric], row[table.ColMinutesPlayed]
			if nineties := m.Num / 90.0; v.Valid && m.Valid && nineties != 0 {
				row[rankCol] = table.Num(v.Num / nineties)
			}
		}
	}

	work.SortByColumn(rankCol, opts.Ascending)
	work.Head(limit)

	label := PrettyLabel(metric)
	board := &Board{
		Metric:  metric,
		Label:   label,
		Columns: []string{rankHeader, table.ColPlayer, table.ColTeam, label},
	}

	var extras []string
	for _, col := range opts.ExtraCols {
		if work.HasColumn(col) {
			extras = append(extras, col)
			board.Columns = append(board.Columns, displayLabel(col))
		}
	}

	for i, row := range work.Rows {
		cells := []string{
			strconv.Itoa(i + 1),
			row[table.ColPlayer].Text,
			row[table.ColTeam].Text,
			FormatNumber(row[rankCol]),
		}
		for _, col := range extras {
			cells = append(cells, FormatNumber(row[col]))
		}
		board.Rows = append(board.Rows, cells)
	}
	return board
}
