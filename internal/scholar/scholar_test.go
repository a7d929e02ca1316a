package scholar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

// resultsPage renders a minimal Scholar results page with n primary hit
// blocks.
func resultsPage(n int) string {
	var b strings.Builder
	b.WriteString("<html><body><div id=\"gs_res_ccl_mid\">")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<div class="gs_r gs_or gs_scl"><div class="gs_ri"><h3>Paper %d</h3></div></div>`, i+1)
	}
	b.WriteString("</div></body></html>")
	return b.String()
}

const noResultsPage = `<html><body><div id="gs_res_ccl_mid">
<div>Your search - "nonexistent paper xyz" - did not match any articles.</div>
</div></body></html>`

// fallbackPage carries only the secondary marker shape.
const fallbackPage = `<html><body>
<div class="gs_ri"><h3>Paper A</h3></div>
<div class="gs_ri"><h3>Paper B</h3></div>
</body></html>`

func TestClassifyRateLimited(t *testing.T) {
	o := Classify(http.StatusTooManyRequests, strings.NewReader(""))
	if o.Status != StatusRateLimited {
		t.Fatalf("Status = %v, want StatusRateLimited", o.Status)
	}
	if o.NumResults != 0 {
		t.Errorf("NumResults = %d, want 0", o.NumResults)
	}
	if !strings.Contains(o.Detail, "Rate limited") {
		t.Errorf("Detail = %q, want it to mention rate limiting", o.Detail)
	}
}

func TestClassifyHTTPError(t *testing.T) {
	for _, code := range []int{403, 404, 500, 503} {
		o := Classify(code, strings.NewReader(""))
		if o.Status != StatusHTTPError {
			t.Errorf("Classify(%d): Status = %v, want StatusHTTPError", code, o.Status)
		}
		if o.NumResults != 0 {
			t.Errorf("Classify(%d): NumResults = %d, want 0", code, o.NumResults)
		}
		if want := fmt.Sprintf("HTTP %d", code); o.Detail != want {
			t.Errorf("Classify(%d): Detail = %q, want %q", code, o.Detail, want)
		}
	}
}

func TestClassifyResultCounts(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"one result", resultsPage(1), 1},
		{"three results", resultsPage(3), 3},
		{"empty page", "<html><body></body></html>", 0},
		{"no results phrase", noResultsPage, 0},
		{"fallback marker", fallbackPage, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Classify(http.StatusOK, strings.NewReader(tt.body))
			if !o.OK() {
				t.Fatalf("Status = %v, want StatusOK (detail %q)", o.Status, o.Detail)
			}
			if o.NumResults != tt.want {
				t.Errorf("NumResults = %d, want %d", o.NumResults, tt.want)
			}
		})
	}
}

func TestClassifyPrimaryMarkerWins(t *testing.T) {
	// The primary container nests the fallback shape; only the primary
	// count must be reported.
	o := Classify(http.StatusOK, strings.NewReader(resultsPage(2)))
	if o.NumResults != 2 {
		t.Errorf("NumResults = %d, want 2", o.NumResults)
	}
}

func TestClassifyNoResultsPhraseOverridesMarkers(t *testing.T) {
	body := resultsPage(1) + noResultsPage
	o := Classify(http.StatusOK, strings.NewReader(body))
	if !o.OK() {
		t.Fatalf("Status = %v, want StatusOK", o.Status)
	}
	if o.NumResults != 0 {
		t.Errorf("NumResults = %d, want 0 when the no-results phrase is present", o.NumResults)
	}
}

func TestClassifyParseError(t *testing.T) {
	o := Classify(http.StatusOK, iotest.ErrReader(errors.New("truncated body")))
	if o.Status != StatusParseError {
		t.Fatalf("Status = %v, want StatusParseError", o.Status)
	}
	if o.NumResults != 0 {
		t.Errorf("NumResults = %d, want 0", o.NumResults)
	}
	if !strings.HasPrefix(o.Detail, "Error:") {
		t.Errorf("Detail = %q, want an Error: message", o.Detail)
	}
}

func TestLookupSendsQueryAndUserAgent(t *testing.T) {
	var gotQuery, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, resultsPage(2))
	}))
	defer ts.Close()

	old := scholarBaseURL
	scholarBaseURL = ts.URL
	defer func() { scholarBaseURL = old }()

	c := NewClient(ts.Client(), "")
	o := c.Lookup(context.Background(), `"Attention Is All You Need" author:"Vaswani" 2017`)

	if !o.OK() || o.NumResults != 2 {
		t.Fatalf("Outcome = %+v, want OK with 2 results", o)
	}
	if gotQuery != `"Attention Is All You Need" author:"Vaswani" 2017` {
		t.Errorf("query param = %q", gotQuery)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want the default browser agent", gotUA)
	}
}

func TestLookupNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	ts.Close() // refuse connections

	old := scholarBaseURL
	scholarBaseURL = ts.URL
	defer func() { scholarBaseURL = old }()

	c := NewClient(&http.Client{Timeout: time.Second}, "")
	o := c.Lookup(context.Background(), "anything")

	if o.Status != StatusNetworkError {
		t.Fatalf("Status = %v, want StatusNetworkError", o.Status)
	}
	if o.NumResults != 0 {
		t.Errorf("NumResults = %d, want 0", o.NumResults)
	}
	if !strings.Contains(o.Detail, "Network error") {
		t.Errorf("Detail = %q, want a Network error message", o.Detail)
	}
}

func TestLookupRateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	old := scholarBaseURL
	scholarBaseURL = ts.URL
	defer func() { scholarBaseURL = old }()

	c := NewClient(ts.Client(), "")
	o := c.Lookup(context.Background(), "anything")

	if o.Status != StatusRateLimited {
		t.Fatalf("Status = %v, want StatusRateLimited", o.Status)
	}
}
