// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar queries Google Scholar and classifies the HTML response.
package scholar

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Status tags the outcome of one lookup.
type Status int

const (
	// StatusOK means the page was fetched and parsed; NumResults holds the
	// number of result blocks (possibly zero).
	StatusOK Status = iota

	// StatusRateLimited means Scholar answered HTTP 429.
	StatusRateLimited

	// StatusHTTPError means Scholar answered a non-200, non-429 status.
	StatusHTTPError

	// StatusNetworkError means the request never produced a response.
	StatusNetworkError

	// StatusParseError means the response body could not be parsed.
	StatusParseError
)

// Outcome is the classified result of one lookup. Every lookup produces
// exactly one Outcome; errors are data here, not Go errors, so the batch
// loop never has to recover from a propagated failure.
type Outcome struct {
	Status     Status
	NumResults int
	Detail     string
}

// OK reports whether the lookup completed and the page was classified.
func (o Outcome) OK() bool { return o.Status == StatusOK }

// resultMarker identifies one structural signature Scholar uses for an
// individual search hit. Markers are tried in order; the first one that
// matches any element wins.
type resultMarker struct {
	element string
	classes []string
}

func (m resultMarker) selector() string {
	return m.element + "." + strings.Join(m.classes, ".")
}

// resultMarkers lists the known hit-container signatures, primary first.
// Scholar has shipped both shapes; either counts as one hit.
var resultMarkers = []resultMarker{
	{element: "div", classes: []string{"gs_r", "gs_or", "gs_scl"}},
	{element: "div", classes: []string{"gs_ri"}},
}

// noResultsPattern matches the phrase Scholar renders when a query has no
// hits, anywhere in the page text.
var noResultsPattern = regexp.MustCompile(`(?i)did not match any articles`)

// Classify turns a raw response into an Outcome per the decision table:
// 429 is rate limiting, any other non-200 is an HTTP error, and a 200 page
// is scanned for result markers. NumResults is the count of matched blocks,
// a presence heuristic rather than a verified identity match.
func Classify(statusCode int, body io.Reader) Outcome {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return Outcome{Status: StatusRateLimited, Detail: "Rate limited by Google Scholar"}
	case statusCode != http.StatusOK:
		return Outcome{Status: StatusHTTPError, Detail: fmt.Sprintf("HTTP %d", statusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return Outcome{Status: StatusParseError, Detail: fmt.Sprintf("Error: %v", err)}
	}

	count := countResults(doc)
	if count == 0 || noResultsPattern.MatchString(doc.Text()) {
		return Outcome{Status: StatusOK, NumResults: 0}
	}
	return Outcome{Status: StatusOK, NumResults: count}
}

// countResults returns the number of elements matched by the first marker
// that yields anything.
func countResults(doc *goquery.Document) int {
	for _, m := range resultMarkers {
		if n := doc.Find(m.selector()).Length(); n > 0 {
			return n
		}
	}
	return 0
}
