// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/bibcheck/pkg/types"
)

const divider = "=================================================="

// Summarize computes the aggregate report over a result sequence.
func Summarize(results []types.CheckResult) types.Report {
	r := types.Report{Total: len(results)}
	for _, res := range results {
		switch {
		case !res.Success:
			r.Errors++
		case res.Found:
			r.Found++
		default:
			r.NotFound++
		}
	}
	return r
}

// WriteSummary writes the human-readable run summary to w, including a
// per-error listing of every failed lookup.
func WriteSummary(report types.Report, results []types.CheckResult, w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total entries checked: %d\n", report.Total)
	fmt.Fprintf(w, "Found in Google Scholar: %d\n", report.Found)
	fmt.Fprintf(w, "Not found: %d\n", report.NotFound)
	fmt.Fprintf(w, "Errors: %d\n", report.Errors)

	if rate, ok := report.SuccessRate(); ok {
		fmt.Fprintf(w, "Success rate: %.1f%%\n", rate)
	} else {
		fmt.Fprintln(w, "Success rate: N/A")
	}

	if report.Errors > 0 {
		fmt.Fprintln(w, "\nEntries with errors:")
		for _, res := range results {
			if !res.Success {
				fmt.Fprintf(w, "  - %s: %s\n", res.EntryID, res.Error)
			}
		}
	}
}

// WriteReport writes the persisted report body to w: header, summary line,
// then one block per entry.
func WriteReport(results []types.CheckResult, w io.Writer) {
	report := Summarize(results)

	fmt.Fprintln(w, "BibTeX Google Scholar Check Results")
	fmt.Fprintf(w, "%s\n\n", divider)
	fmt.Fprintf(w, "Summary: %d/%d entries found\n\n", report.Found, report.Total)

	for _, res := range results {
		fmt.Fprintf(w, "Entry ID: %s\n", res.EntryID)
		fmt.Fprintf(w, "Title: %s\n", res.Title)
		fmt.Fprintf(w, "Query: %s\n", res.Query)
		fmt.Fprintf(w, "Status: %s\n", res.StatusLine())
		fmt.Fprintf(w, "%s\n\n", strings.Repeat("-", 30))
	}
}

// WriteReportFile persists the report to path. Callers treat a failure here
// as non-fatal: the computed results stand regardless of whether the report
// could be written.
func WriteReportFile(path string, results []types.CheckResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	WriteReport(results, f)
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}

// jsonOutput is the shape of the --json summary.
type jsonOutput struct {
	Summary types.Report        `json:"summary"`
	Results []types.CheckResult `json:"results"`
}

// FormatJSON writes the report and results as indented JSON to w.
func FormatJSON(results []types.CheckResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{Summary: Summarize(results), Results: results})
}
