package leaderboard

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mauv0809/superlig-stats/internal/table"
)

// FormatNumber renders a cell for display. Missing values become the empty
// string, whole numbers lose their decimals, everything else gets exactly
// two. Text cells pass through unchanged. No thousands separators, no
// locale dependence.
func FormatNumber(c table.Cell) string {
	if c.Valid {
		if c.Num == float64(int64(c.Num)) {
			return strconv.FormatInt(int64(c.Num), 10)
		}
		return strconv.FormatFloat(c.Num, 'f', 2, 64)
	}
	return c.Text
}

// PrettyLabel turns a metric column name into a display header: snake-case
// and camel-case boundaries become spaces and each word is capitalised
// (keyPasses -> Key Passes).
func PrettyLabel(col string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range strings.ReplaceAll(col, "_", " ") {
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// displayLabel maps a column to its display header. Age-like columns
// always show as "Age" and country as "Country"; other columns keep their
// raw name so player/team match the source file.
func displayLabel(col string) string {
	switch col {
	case "age", "age_x", "age_y":
		return "Age"
	case table.ColCountry:
		return "Country"
	default:
		return col
	}
}
