// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibfile loads BibTeX files into ordered Record slices.
package bibfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/nickng/bibtex"

	"github.com/pdiddy/bibcheck/pkg/types"
)

// Load parses the BibTeX file at path and returns its entries in file
// order. Field names are lowercased and values whitespace-trimmed. A
// missing or unparseable file is fatal to the run: the error is returned
// before any lookup happens.
func Load(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening BibTeX file: %w", err)
	}
	defer f.Close()

	bib, err := bibtex.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing BibTeX file %s: %w", path, err)
	}

	records := make([]types.Record, 0, len(bib.Entries))
	for i, entry := range bib.Entries {
		rec := types.Record{
			ID:     entry.CiteName,
			Type:   entry.Type,
			Fields: make(map[string]string, len(entry.Fields)),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("entry_%d", i+1)
		}
		for name, value := range entry.Fields {
			rec.Fields[strings.ToLower(name)] = strings.TrimSpace(value.String())
		}
		records = append(records, rec)
	}
	return records, nil
}
