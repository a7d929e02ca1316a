// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bibcheck/internal/bibfile"
	"github.com/pdiddy/bibcheck/internal/check"
	"github.com/pdiddy/bibcheck/internal/history"
	"github.com/pdiddy/bibcheck/internal/httputil"
	"github.com/pdiddy/bibcheck/internal/scholar"
	"github.com/pdiddy/bibcheck/pkg/types"
)

const (
	defaultMinDelay = 2 * time.Second
	defaultMaxDelay = 5 * time.Second
	defaultTimeout  = 10 * time.Second
)

var checkCmd = &cobra.Command{
	Use:   "check <file.bib>",
	Short: "Check every entry of a BibTeX file against Google Scholar",
	Long: `Check loads a BibTeX file, builds one Scholar query per entry (quoted
title, first-author filter, year), and performs the lookups sequentially
with a randomized delay between requests. Per-entry failures are recorded
and the run continues; only a missing or unparseable input file aborts.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringP("output", "o", "", "write a plain-text report to this file")
	checkCmd.Flags().String("results", "", "save the run as a YAML results file")
	checkCmd.Flags().Duration("min-delay", defaultMinDelay, "minimum delay before each request")
	checkCmd.Flags().Duration("max-delay", defaultMaxDelay, "maximum delay before each request")
	checkCmd.Flags().Duration("timeout", defaultTimeout, "per-request HTTP timeout")
	checkCmd.Flags().String("user-agent", scholar.DefaultUserAgent, "User-Agent header for requests")
	checkCmd.Flags().Bool("json", false, "print the summary and results as JSON")
	checkCmd.Flags().String("history-db", "", "record the run in this SQLite history database")

	viper.BindPFlag("min_delay", checkCmd.Flags().Lookup("min-delay"))
	viper.BindPFlag("max_delay", checkCmd.Flags().Lookup("max-delay"))
	viper.BindPFlag("timeout", checkCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("user_agent", checkCmd.Flags().Lookup("user-agent"))
	viper.BindPFlag("history.path", checkCmd.Flags().Lookup("history-db"))

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	bibPath := args[0]

	cfg := types.CheckConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		MinDelay: viper.GetDuration("min_delay"),
		MaxDelay: viper.GetDuration("max_delay"),
	}
	if cfg.MinDelay > cfg.MaxDelay {
		return fmt.Errorf("min-delay (%v) exceeds max-delay (%v)", cfg.MinDelay, cfg.MaxDelay)
	}

	fmt.Fprintf(os.Stderr, "Loading BibTeX file: %s\n", bibPath)
	records, err := bibfile.Load(bibPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Found %d entries to check (delay %v-%v between requests)\n",
		len(records), cfg.MinDelay, cfg.MaxDelay)

	client := scholar.NewClient(httputil.NewClient(cfg.Timeout), cfg.UserAgent)
	throttle := httputil.NewThrottle(cfg.MinDelay, cfg.MaxDelay, nil)

	startedAt := time.Now()
	results := check.Run(cmd.Context(), client, throttle, records, os.Stdout)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		if err := check.FormatJSON(results, os.Stdout); err != nil {
			return err
		}
	} else {
		check.WriteSummary(check.Summarize(results), results, os.Stdout)
	}

	// Persistence failures below are surfaced but never fail the run; the
	// computed results already went to stdout.
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := check.WriteReportFile(output, results); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save report: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Report saved to: %s\n", output)
		}
	}

	if resultsPath, _ := cmd.Flags().GetString("results"); resultsPath != "" {
		if err := check.WriteResultsFile(resultsPath, bibPath, cfg, results); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save results file: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Results saved to: %s\n", resultsPath)
		}
	}

	if dbPath := viper.GetString("history.path"); dbPath != "" {
		if err := recordHistory(cmd, dbPath, bibPath, startedAt, results); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run history: %v\n", err)
		}
	}

	return nil
}

func recordHistory(cmd *cobra.Command, dbPath, source string, startedAt time.Time, results []types.CheckResult) error {
	store, err := history.NewStore(types.HistoryConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.RecordRun(cmd.Context(), source, startedAt, results)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Run recorded as #%d in %s\n", id, dbPath)
	return nil
}
