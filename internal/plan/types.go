// Package plan distributes presentation requests across detected
// screens and drives the placement executor for each assignment.
package plan

import (
	"github.com/1broseidon/showwall/internal/screen"
)

// Presentation is one item to display.
type Presentation struct {
	URL     string `json:"url"`
	Browser string `json:"browser,omitempty"`
	// ScreenID is an explicit target screen. It is honored only by the
	// single-window path, never by auto-distribution.
	ScreenID *int `json:"screen_id,omitempty"`
}

// Request is the boundary input: the full set of presentations for one
// distribution run.
type Request struct {
	Presentations []Presentation `json:"presentations"`
}

// Window records one successfully launched browser window. PID only
// guarantees the process was started, not that placement succeeded.
type Window struct {
	ScreenID int    `json:"screen_id"`
	PID      int    `json:"pid"`
	URL      string `json:"url"`
	Split    bool   `json:"split"`
	// SplitIndex/SplitTotal are set when Split is true. SplitIndex 0 is
	// elided from JSON; consumers key off Split and SplitTotal.
	SplitIndex int `json:"split_index,omitempty"`
	SplitTotal int `json:"split_total,omitempty"`
}

// Report is the aggregated outcome of a distribution run. It reflects
// exactly what was attempted, including partial progress.
type Report struct {
	Success bool            `json:"success"`
	Windows []Window        `json:"windows"`
	Errors  []string        `json:"errors"`
	Screens []screen.Screen `json:"screens,omitempty"`
}

// Error strings surfaced in reports. They match the JSON contract
// callers already parse.
const (
	errNoPresentations = "No presentations to launch"
	errMissingURL      = "Missing URL in presentation config"
)
