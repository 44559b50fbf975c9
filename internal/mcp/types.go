package mcp

import "github.com/1broseidon/showwall/internal/plan"

// ListScreensInput is the input for the list_screens tool.
type ListScreensInput struct{}

// ScreenInfo describes one detected display.
type ScreenInfo struct {
	ID      int    `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary"`
	Name    string `json:"name,omitempty"`
}

// ListScreensOutput is the output for the list_screens tool.
type ListScreensOutput struct {
	Screens []ScreenInfo `json:"screens"`
	System  string       `json:"system"`
}

// PresentationInput is one presentation item for launch_presentations.
type PresentationInput struct {
	URL     string `json:"url" jsonschema:"required,Content URL to display"`
	Browser string `json:"browser,omitempty" jsonschema:"Browser to use: chrome, chromium, or firefox (default: chrome)"`
}

// LaunchPresentationsInput is the input for the launch_presentations tool.
type LaunchPresentationsInput struct {
	Presentations []PresentationInput `json:"presentations" jsonschema:"required,Presentations to distribute across the detected screens"`
}

// LaunchPresentationsOutput is the output for the launch_presentations tool.
type LaunchPresentationsOutput struct {
	Success bool          `json:"success"`
	Windows []plan.Window `json:"windows"`
	Errors  []string      `json:"errors"`
}

// LaunchWindowInput is the input for the launch_window tool.
type LaunchWindowInput struct {
	URL      string `json:"url" jsonschema:"required,Content URL to display"`
	ScreenID int    `json:"screen_id,omitempty" jsonschema:"Target screen index (out-of-range values fall back to screen 0)"`
	Browser  string `json:"browser,omitempty" jsonschema:"Browser to use: chrome, chromium, or firefox (default: chrome)"`
}

// LaunchWindowOutput is the output for the launch_window tool.
type LaunchWindowOutput struct {
	Success  bool     `json:"success"`
	ScreenID int      `json:"screen_id"`
	PID      int      `json:"pid"`
	Errors   []string `json:"errors,omitempty"`
}
