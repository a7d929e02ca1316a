// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bibcheck pipeline.
package types

// Record holds one bibliographic entry parsed from a BibTeX file. Records
// are produced by the bibfile loader and treated as read-only from then on.
type Record struct {
	// ID is the citation key of the entry (e.g. "vaswani2017attention").
	ID string `json:"id" yaml:"id"`

	// Type is the entry type (e.g. "article", "inproceedings").
	Type string `json:"type" yaml:"type"`

	// Fields maps lowercased BibTeX field names to their raw values.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Field returns the named field value, or "" when the field is absent.
func (r Record) Field(name string) string {
	return r.Fields[name]
}

// Title returns the title field, or "" when absent.
func (r Record) Title() string { return r.Field("title") }

// Author returns the author field, or "" when absent.
func (r Record) Author() string { return r.Field("author") }

// Year returns the year field, or "" when absent.
func (r Record) Year() string { return r.Field("year") }
