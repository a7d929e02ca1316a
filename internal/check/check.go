// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check drives per-entry Scholar lookups and writes reports.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/bibcheck/internal/httputil"
	"github.com/pdiddy/bibcheck/internal/query"
	"github.com/pdiddy/bibcheck/internal/scholar"
	"github.com/pdiddy/bibcheck/pkg/types"
)

// Looker performs one Scholar lookup for a query string. *scholar.Client
// is the production implementation; tests substitute a stub.
type Looker interface {
	Lookup(ctx context.Context, query string) scholar.Outcome
}

// Run checks each record against Scholar, strictly in order and one lookup
// in flight at a time. Concurrent requests sharply raise the odds of being
// blocked, so the sequential loop is the design, not a limitation.
//
// Every record yields exactly one CheckResult even when its lookup fails;
// failures are recorded and the run continues. Per-item progress goes to w.
// Cancellation is honored at iteration boundaries: an interrupted run
// returns the results accumulated so far.
func Run(ctx context.Context, client Looker, throttle *httputil.Throttle, records []types.Record, w io.Writer) []types.CheckResult {
	results := make([]types.CheckResult, 0, len(records))

	for i, rec := range records {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "\ninterrupted after %d of %d entries\n", len(results), len(records))
			break
		}

		title := rec.Title()
		if title == "" {
			title = "No title"
		}

		fmt.Fprintf(w, "\n[%d/%d] checking: %s\n", i+1, len(records), rec.ID)
		fmt.Fprintf(w, "Title: %s\n", title)

		q := query.Build(rec)
		fmt.Fprintf(w, "Query: %s\n", q)

		// One throttled pause per lookup attempt, including the first.
		if err := throttle.Wait(ctx); err != nil {
			fmt.Fprintf(w, "\ninterrupted after %d of %d entries\n", len(results), len(records))
			break
		}

		outcome := client.Lookup(ctx, q)

		result := types.CheckResult{
			EntryID:    rec.ID,
			Title:      title,
			Query:      q,
			Success:    outcome.OK(),
			Found:      outcome.OK() && outcome.NumResults > 0,
			NumResults: outcome.NumResults,
			Error:      outcome.Detail,
		}
		results = append(results, result)

		fmt.Fprintf(w, "Status: %s\n", result.StatusLine())
	}

	return results
}
