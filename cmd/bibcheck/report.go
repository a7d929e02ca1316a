// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bibcheck/internal/check"
)

var reportCmd = &cobra.Command{
	Use:   "report <results.yaml>",
	Short: "Re-render the report from a saved results file",
	Long: `Report reads a YAML results file written by check --results and renders
the plain-text report and summary again without touching the network.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	rf, err := check.ReadResultsFile(args[0])
	if err != nil {
		return err
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := check.WriteReportFile(output, rf.Results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to: %s\n", output)
	} else {
		check.WriteReport(rf.Results, os.Stdout)
	}

	check.WriteSummary(check.Summarize(rf.Results), rf.Results, os.Stdout)
	return nil
}
