// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bibcheck/pkg/types"
)

// ResultsFile is the on-disk representation of one check run. A run can be
// saved and its report re-rendered later without re-querying Scholar.
type ResultsFile struct {
	Source  string              `yaml:"source"`
	Config  RunConfig           `yaml:"config"`
	Results []types.CheckResult `yaml:"results"`
	Summary RunSummary          `yaml:"summary"`
}

// RunConfig stores the settings that produced the results.
type RunConfig struct {
	MinDelay  time.Duration `yaml:"min_delay"`
	MaxDelay  time.Duration `yaml:"max_delay"`
	UserAgent string        `yaml:"user_agent"`
}

// RunSummary stores the aggregate counts and a timestamp.
type RunSummary struct {
	Total     int       `yaml:"total"`
	Found     int       `yaml:"found"`
	NotFound  int       `yaml:"not_found"`
	Errors    int       `yaml:"errors"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultsFile saves a run to a YAML file.
func WriteResultsFile(path, source string, cfg types.CheckConfig, results []types.CheckResult) error {
	report := Summarize(results)
	rf := ResultsFile{
		Source: source,
		Config: RunConfig{
			MinDelay:  cfg.MinDelay,
			MaxDelay:  cfg.MaxDelay,
			UserAgent: cfg.UserAgent,
		},
		Results: results,
		Summary: RunSummary{
			Total:     report.Total,
			Found:     report.Found,
			NotFound:  report.NotFound,
			Errors:    report.Errors,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultsFile loads a previously saved run from disk.
func ReadResultsFile(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file %s: %w", path, err)
	}
	return &rf, nil
}
