package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DerivedNinetiesColumn is added when minutesPlayed is present.
const (
	ColMinutesPlayed = "minutesPlayed"
	ColNineties      = "90s"
)

// Loader reads player-stat CSV files into Tables. When constructed with a
// Cache, repeated loads of the same path are served from memory; callers
// must tolerate recomputation after Invalidate.
type Loader struct {
	cache *Cache
}

// NewLoader creates a Loader. cache may be nil to disable memoization.
func NewLoader(cache *Cache) *Loader {
	return &Loader{cache: cache}
}

// Load reads and cleans the table at path. A missing or unreadable file is
// the only fatal condition; individual bad cells never are.
func (l *Loader) Load(path string) (*Table, error) {
	if l.cache != nil {
		if t, ok := l.cache.Get(path); ok {
			log.Debug("Serving table from cache", "path", path)
			return t, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats file %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stats file %s: %w", path, err)
	}
	log.Info("Loaded stats table", "path", path, "rows", t.Len(), "columns", len(t.Columns))

	if l.cache != nil {
		l.cache.Put(path, t)
	}
	return t, nil
}

// Invalidate drops any cached copy of path.
func (l *Loader) Invalidate(path string) {
	if l.cache != nil {
		l.cache.Invalidate(path)
	}
}

// Parse reads a CSV stream with a header row. Every column outside the
// identifier set is coerced to numeric; a cell that fails coercion becomes
// a missing value rather than an error. When minutesPlayed exists, a
// derived 90s column is appended.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty stats file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	t := &Table{Columns: cols}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if i >= len(record) {
				break
			}
			row[col] = coerce(col, record[i])
		}
		t.Rows = append(t.Rows, row)
	}

	if t.HasColumn(ColMinutesPlayed) {
		t.AddColumn(ColNineties)
		for _, row := range t.Rows {
			if m := row[ColMinutesPlayed]; m.Valid {
				row[ColNineties] = Num(m.Num / 90.0)
			}
		}
	}
	return t, nil
}

// textColumns are non-identifier columns that still carry text, as found
// in the joined tackles export.
var textColumns = map[string]bool{
	"position":    true,
	"nationality": true,
}

// coerce turns a raw CSV field into a cell. Identifier and text columns
// stay text; everything else parses as a float or becomes missing.
func coerce(col, raw string) Cell {
	raw = strings.TrimSpace(raw)
	if IsIdentifier(col) || textColumns[col] {
		return Text(raw)
	}
	if raw == "" {
		return Cell{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Cell{}
	}
	return Num(f)
}
