// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// CheckResult records the outcome of one Scholar lookup. Exactly one
// CheckResult is produced per input Record, in input order, and it is not
// mutated after creation.
type CheckResult struct {
	// EntryID is the citation key of the checked entry.
	EntryID string `json:"entry_id" yaml:"entry_id"`

	// Title is the entry title as it appeared in the BibTeX file.
	Title string `json:"title" yaml:"title"`

	// Query is the search query string sent to Scholar.
	Query string `json:"query" yaml:"query"`

	// Success reports whether the lookup completed and the response was
	// classified. A failed lookup always carries NumResults == 0.
	Success bool `json:"success" yaml:"success"`

	// Found reports whether the entry is plausibly present in Scholar.
	// It is true only when Success is true and NumResults > 0.
	Found bool `json:"found" yaml:"found"`

	// NumResults is the number of result blocks found on the page.
	NumResults int `json:"num_results" yaml:"num_results"`

	// Error describes why the lookup failed; empty when Success is true.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// StatusLine renders the result as a one-line status for progress output
// and the persisted report.
func (r CheckResult) StatusLine() string {
	if !r.Success {
		return fmt.Sprintf("ERROR - %s", r.Error)
	}
	if r.Found {
		return fmt.Sprintf("FOUND (%d results)", r.NumResults)
	}
	return fmt.Sprintf("NOT FOUND (%d results)", r.NumResults)
}

// Report is the read-only aggregate over a sequence of CheckResults.
type Report struct {
	Total    int `json:"total" yaml:"total"`
	Found    int `json:"found" yaml:"found"`
	NotFound int `json:"not_found" yaml:"not_found"`
	Errors   int `json:"errors" yaml:"errors"`
}

// SuccessRate returns the found/total percentage. The ok return is false
// when Total is zero and the rate is undefined.
func (r Report) SuccessRate() (float64, bool) {
	if r.Total == 0 {
		return 0, false
	}
	return float64(r.Found) / float64(r.Total) * 100, true
}
