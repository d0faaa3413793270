package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/weight"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var weightDate string

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Daily body weight",
}

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Record the body weight for a day (replaces that day's value)",
	Long: `Records the body weight for a day, replacing that day's value.

The write goes straight to the database: a running service keeps showing its cached
/stats and /analytics pages until stats_cache_ttl_seconds expires (60s by default).
Pages reading the weight directly (/, /profile, /weight) show it right away.`,
	Example: `  fittrackctl weight add 81.4
  fittrackctl weight add 80.9 --date 2024-03-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := parseWeight(args[0])
		if err != nil {
			return err
		}
		date, err := parseDate(weightDate, time.Now())
		if err != nil {
			return err
		}

		if err := weight.NewRepo(dbPool).Upsert(commandContext(cmd), date, kg); err != nil {
			return err
		}

		color.Green("✓ weight recorded")
		fmt.Printf("  %s  %.1f kg\n", date.Format(config.DateLayout), kg)
		return nil
	},
}

var weightLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent body weight",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		entry, err := weight.NewRepo(dbPool).Latest(commandContext(cmd))
		if err != nil {
			return err
		}
		if entry == nil {
			color.Yellow("no weight recorded yet")
			return nil
		}
		fmt.Printf("%s  %.1f kg\n", entry.Date.Format(config.DateLayout), entry.Weight)
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "day of the measurement, YYYY-MM-DD (default today)")
	weightCmd.AddCommand(weightAddCmd, weightLatestCmd)
}

func parseWeight(s string) (float64, error) {
	kg, err := strconv.ParseFloat(s, 64)
	if err != nil || kg <= 0 {
		return 0, fmt.Errorf("invalid weight: %s", s)
	}
	return kg, nil
}

// parseDate returns the calendar date of s, or of now when s is empty.
func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(config.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date [%s], use YYYY-MM-DD", s)
	}
	return date, nil
}
