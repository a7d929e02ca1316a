// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query builds Scholar search queries from bibliographic records.
package query

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/bibcheck/pkg/types"
)

// authorSep is the literal separator between authors in a BibTeX author field.
const authorSep = " and "

// Clean strips runes that are neither alphanumeric nor whitespace and
// collapses whitespace runs to single spaces. BibTeX titles carry braces,
// escapes, and line breaks that would poison a phrase search.
func Clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Build composes a search query from a record: the cleaned title as a
// quoted phrase, an author:"<last name>" filter for the first author, and
// the raw year, space-joined. Missing fields are skipped silently; a record
// with no usable fields yields "".
func Build(rec types.Record) string {
	var parts []string

	if title := rec.Title(); title != "" {
		parts = append(parts, fmt.Sprintf("%q", Clean(title)))
	}

	if last := firstAuthorLastName(rec.Author()); last != "" {
		parts = append(parts, fmt.Sprintf("author:%q", last))
	}

	if year := rec.Year(); year != "" {
		parts = append(parts, year)
	}

	return strings.Join(parts, " ")
}

// firstAuthorLastName extracts the last name of the first author from a
// BibTeX author field. "Smith, John and Doe, Jane" and "John Smith" both
// yield "Smith".
func firstAuthorLastName(authors string) string {
	first, _, _ := strings.Cut(authors, authorSep)
	first = strings.TrimSpace(first)
	if first == "" {
		return ""
	}

	// "Last, First" form: the last name precedes the first comma.
	if last, _, ok := strings.Cut(first, ","); ok {
		return strings.TrimSpace(last)
	}

	// "First Last" form: the last name is the final token.
	tokens := strings.Fields(first)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
