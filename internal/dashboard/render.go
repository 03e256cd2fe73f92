package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	subtitleStyle = lipgloss.NewStyle().
			Faint(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Render returns the card as a styled terminal table.
func (c Card) Render() string {
	tbl := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		Headers(c.Board.Columns...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, row := range c.Board.Rows {
		tbl.Row(row...)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(c.Subtitle))
	b.WriteString("\n")
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	return b.String()
}
