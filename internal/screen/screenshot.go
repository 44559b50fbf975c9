package screen

import "github.com/kbinani/screenshot"

// ScreenshotProvider enumerates displays through the cross-platform
// screenshot library. It reports virtual-desktop bounds but cannot tell
// which display is primary; Normalize promotes display 0.
type ScreenshotProvider struct{}

var _ Provider = ScreenshotProvider{}

func (ScreenshotProvider) Name() string { return "screenshot" }

func (ScreenshotProvider) Detect() ([]Screen, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, nil
	}

	screens := make([]Screen, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		if b.Dx() <= 0 || b.Dy() <= 0 {
			continue
		}
		screens = append(screens, Screen{
			ID:     i,
			X:      b.Min.X,
			Y:      b.Min.Y,
			Width:  b.Dx(),
			Height: b.Dy(),
		})
	}
	return screens, nil
}
