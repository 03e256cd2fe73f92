package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mauv0809/superlig-stats/internal/dashboard"
	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/metrics"
	"github.com/mauv0809/superlig-stats/internal/table"
	"github.com/mauv0809/superlig-stats/internal/tacklers"
)

var (
	topN   int
	season string
)

func init() {
	tacklersCmd.Flags().IntVar(&topN, "top-n", 15, "Number of players to list")
	tacklersCmd.Flags().StringVar(&season, "season", "25/26", "Season to report on")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(tacklersCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render every leaderboard card the stats file supports",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newDashboardService()
		cards, err := svc.Cards(cliFilters())
		if err != nil {
			return err
		}

		group := ""
		for _, card := range cards {
			if card.Group != group {
				group = card.Group
				fmt.Printf("\n== %s ==\n\n", group)
			}
			fmt.Println(card.Render())
		}
		return nil
	},
}

var topCmd = &cobra.Command{
	Use:   "top <metric>",
	Short: "Render the leaderboard for a single metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newDashboardService()
		card, err := svc.Card(args[0], cliFilters())
		if err != nil {
			return err
		}
		fmt.Println(card.Render())
		return nil
	},
}

var tacklersCmd = &cobra.Command{
	Use:   "tacklers",
	Short: "List the top tacklers for a season",
	RunE: func(cmd *cobra.Command, args []string) error {
		ext := tacklers.New(table.NewLoader(table.NewCache()), nil, localMetrics(), csvPath, "Turkish Super Lig")
		top, err := ext.TopTacklers(season, topN, agePtr(ageMin), agePtr(ageMax))
		if err != nil {
			return err
		}

		card := dashboard.Card{
			Title:    "Top Tacklers",
			Subtitle: fmt.Sprintf("Season %s", season),
			Board:    tacklersBoard(top),
		}
		fmt.Println(card.Render())
		return nil
	},
}

func newDashboardService() *dashboard.Service {
	loader := table.NewLoader(table.NewCache())
	return dashboard.New(loader, localMetrics(), csvPath, "Türkiye")
}

// localMetrics registers against a private registry; the CLI never
// exposes a scrape endpoint.
func localMetrics() metrics.Metrics {
	return metrics.NewService(prometheus.NewRegistry())
}

func cliFilters() dashboard.Filters {
	f := dashboard.Filters{
		MinMinutes:  minMinutes,
		MinAge:      agePtr(ageMin),
		MaxAge:      agePtr(ageMax),
		Nationality: dashboard.NationalityFilter(nationality),
		Per90:       per90,
	}
	return f
}

func agePtr(v int) *int {
	if v < 0 {
		return nil
	}
	return &v
}

// tacklersBoard adapts the extractor table to the board shape the card
// renderer expects.
func tacklersBoard(t *table.Table) *leaderboard.Board {
	board := &leaderboard.Board{
		Metric:  tacklers.ColTackles,
		Label:   "Tackles",
		Columns: append([]string{"Rk"}, t.Columns...),
	}
	for i, row := range t.Rows {
		cells := []string{fmt.Sprintf("%d", i+1)}
		for _, col := range t.Columns {
			cell := row[col]
			if cell.Valid {
				cells = append(cells, leaderboard.FormatNumber(cell))
				continue
			}
			cells = append(cells, cell.Text)
		}
		board.Rows = append(board.Rows, cells)
	}
	return board
}
