package leaderboard

// DefaultLimit is how many rows a board keeps after ranking.
const DefaultLimit = 10

// Options controls how a board is built from a stats table.
type Options struct {
	// Per90 ranks by metric / (minutesPlayed / 90) instead of the raw
	// metric. Ignored when the table has no minutesPlayed column.
	Per90 bool
	// MinMinutes drops rows below the minutes-played threshold before
	// ranking. 0 disables the filter.
	MinMinutes int
	// Ascending ranks lowest-first. Missing values still sort last.
	Ascending bool
	// ExtraCols are appended after the ranking column, in order, skipping
	// any column the table does not carry.
	ExtraCols []string
	// Limit caps the number of rows; 0 means DefaultLimit.
	Limit int
}

// Board is a ranked display table, ready for rendering: every cell is
// already a formatted string.
type Board struct {
	// Metric is the raw metric column the board was ranked by.
	Metric string
	// Label is the human form of Metric used as the ranking column header.
	Label   string
	Columns []string
	Rows    [][]string
}
