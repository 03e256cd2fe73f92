// Package table holds the in-memory tabular model every other component
// works on: ordered columns, rows of cells, and the copy-on-transform
// operations (filter, sort, select) the leaderboard pipeline is built from.
package table

import "sort"

// Identifier columns carry text and are never coerced to numbers.
const (
	ColPlayer  = "player"
	ColTeam    = "team"
	ColCountry = "country"
)

// IsIdentifier reports whether a column is part of the identifier set.
func IsIdentifier(col string) bool {
	return col == ColPlayer || col == ColTeam || col == ColCountry
}

// Cell is a single value. Numeric cells have Valid set and carry Num;
// identifier cells carry Text. The zero Cell is a missing value.
type Cell struct {
	Text  string
	Num   float64
	Valid bool
}

// Num creates a defined numeric cell.
func Num(v float64) Cell {
	return Cell{Num: v, Valid: true}
}

// Text creates a text cell. An empty string is still a missing value.
func Text(s string) Cell {
	return Cell{Text: s}
}

// Missing reports whether the cell holds no value at all.
func (c Cell) Missing() bool {
	return !c.Valid && c.Text == ""
}

// Row maps column name to cell. Absent keys are missing values.
type Row map[string]Cell

// Table is an ordered set of columns over rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Copy returns a deep copy: mutating the copy's rows never touches the
// original. All transforms below operate on copies so a loaded table can
// be shared across requests.
func (t *Table) Copy() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		dup := make(Row, len(row))
		for k, v := range row {
			dup[k] = v
		}
		out.Rows[i] = dup
	}
	return out
}

// AddColumn appends a column if it is not already present. Existing rows
// simply have a missing value for it.
func (t *Table) AddColumn(col string) {
	if !t.HasColumn(col) {
		t.Columns = append(t.Columns, col)
	}
}

// RenameColumn renames a column in place, in both the column list and
// every row.
func (t *Table) RenameColumn(from, to string) {
	if from == to || !t.HasColumn(from) {
		return
	}
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
		}
	}
	for _, row := range t.Rows {
		if cell, ok := row[from]; ok {
			row[to] = cell
			delete(row, from)
		}
	}
}

// Where returns a new table containing the rows the predicate keeps.
// Row maps are shared with the receiver; callers that mutate rows must
// Copy first.
func (t *Table) Where(keep func(Row) bool) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// SortByColumn stable-sorts rows by a numeric column. Missing values sort
// after all defined values in both directions, so toggling per-90 never
// floats undefined rates to the top. Ties keep their original order.
func (t *Table) SortByColumn(col string, ascending bool) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i][col], t.Rows[j][col]
		if a.Valid != b.Valid {
			return a.Valid
		}
		if !a.Valid {
			return false
		}
		if ascending {
			return a.Num < b.Num
		}
		return a.Num > b.Num
	})
}

// Head truncates the table to at most n rows.
func (t *Table) Head(n int) {
	if n >= 0 && len(t.Rows) > n {
		t.Rows = t.Rows[:n]
	}
}

// Select returns a new table with exactly the given columns in the given
// order. Cells for columns a row does not carry come back missing.
func (t *Table) Select(cols ...string) *Table {
	out := &Table{Columns: append([]string(nil), cols...)}
	for _, row := range t.Rows {
		dup := make(Row, len(cols))
		for _, c := range cols {
			dup[c] = row[c]
		}
		out.Rows = append(out.Rows, dup)
	}
	return out
}
