package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	csvPath     string
	minMinutes  int
	ageMin      int
	ageMax      int
	nationality string
	per90       bool
)

var rootCmd = &cobra.Command{
	Use:   "superlig",
	Short: "Turkish Super Lig player leaderboards from the command line",
	Long: `Builds Turkish Super Lig player leaderboards straight from the local
stats file, without going through the server.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "tackles_joined.csv", "Path to the stats CSV file")
	rootCmd.PersistentFlags().IntVar(&minMinutes, "min-minutes", 0, "Minimum minutes played")
	rootCmd.PersistentFlags().IntVar(&ageMin, "age-min", -1, "Minimum age (inclusive, -1 disables)")
	rootCmd.PersistentFlags().IntVar(&ageMax, "age-max", -1, "Maximum age (inclusive, -1 disables)")
	rootCmd.PersistentFlags().StringVar(&nationality, "nationality", "all", "Nationality filter: all, domestic or foreign")
	rootCmd.PersistentFlags().BoolVar(&per90, "per90", false, "Rank by per-90 rates instead of totals")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
