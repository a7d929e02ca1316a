// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. Scholar
	// rejects obviously non-browser agents, so the default mimics a real
	// browser.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CheckConfig holds settings for a check run.
type CheckConfig struct {
	HTTPConfig `yaml:",inline"`

	// MinDelay is the lower bound of the randomized delay before each
	// lookup (default 2s).
	MinDelay time.Duration `json:"min_delay" yaml:"min_delay"`

	// MaxDelay is the upper bound of the randomized delay before each
	// lookup (default 5s).
	MaxDelay time.Duration `json:"max_delay" yaml:"max_delay"`
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	// Path is the SQLite database file for recorded runs. Empty disables
	// history recording.
	Path string `json:"path" yaml:"path"`
}
