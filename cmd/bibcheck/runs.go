// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bibcheck/internal/check"
	"github.com/pdiddy/bibcheck/internal/history"
	"github.com/pdiddy/bibcheck/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded check runs",
	Long: `Runs lists the check runs recorded in the history database, most recent
first. Use --show with a run ID to render that run's full report.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().String("history-db", "", "SQLite history database to read")
	runsCmd.Flags().Int64("show", 0, "render the full report for this run ID")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("history-db")
	if dbPath == "" {
		dbPath = viper.GetString("history.path")
	}
	if dbPath == "" {
		return fmt.Errorf("no history database configured: pass --history-db or set history.path")
	}

	store, err := history.NewStore(types.HistoryConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer store.Close()

	if showID, _ := cmd.Flags().GetInt64("show"); showID > 0 {
		results, err := store.RunResults(cmd.Context(), showID)
		if err != nil {
			return err
		}
		check.WriteReport(results, os.Stdout)
		check.WriteSummary(check.Summarize(results), results, os.Stdout)
		return nil
	}

	runs, err := store.ListRuns(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Printf("%-4s  %-20s  %-30s  %5s  %5s  %5s  %6s\n",
		"ID", "Started", "Source", "Total", "Found", "Miss", "Errors")
	for _, r := range runs {
		source := r.Source
		if len(source) > 30 {
			source = source[:27] + "..."
		}
		fmt.Printf("%-4d  %-20s  %-30s  %5d  %5d  %5d  %6d\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), source,
			r.Total, r.Found, r.NotFound, r.Errors)
	}
	return nil
}
