// Package screen models detected displays and the capability interface
// used to enumerate them.
package screen

import "fmt"

// Rect describes a rectangular region in virtual-desktop coordinates.
// X and Y may be negative for screens left of or above the primary.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Screen is one detected display surface. IDs are stable only within a
// single detection pass and are never persisted.
type Screen struct {
	ID      int    `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary"`
	Name    string `json:"name,omitempty"`
}

// Rect returns the screen's full bounds.
func (s Screen) Rect() Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

func (s Screen) String() string {
	return fmt.Sprintf("screen %d: %dx%d+%d+%d", s.ID, s.Width, s.Height, s.X, s.Y)
}

// Provider enumerates the host's displays.
type Provider interface {
	// Detect returns the displays in ascending ID order. An empty slice
	// with a nil error is treated as a failed detection by callers.
	Detect() ([]Screen, error)
	// Name identifies the provider in logs.
	Name() string
}

// Fallback dimensions used when no provider can enumerate displays.
const (
	FallbackWidth  = 1920
	FallbackHeight = 1080
)

// Fallback returns the synthetic single-screen layout: a primary
// FallbackWidth x FallbackHeight display at the origin.
func Fallback(width, height int) Screen {
	if width <= 0 {
		width = FallbackWidth
	}
	if height <= 0 {
		height = FallbackHeight
	}
	return Screen{ID: 0, Width: width, Height: height, Primary: true, Name: "fallback"}
}
