package plan

import (
	"math/rand"

	"github.com/1broseidon/showwall/internal/screen"
)

// Assignment maps one presentation to a target rectangle: a whole
// screen, or one equal-width slice of a screen shared with siblings.
type Assignment struct {
	Request    Presentation
	ScreenID   int
	Rect       screen.Rect
	Split      bool
	SplitIndex int
	SplitTotal int
}

// Assign computes the screen-to-window distribution. With n requests
// and m screens:
//
//   - n <= m: request i goes to screen i mod m, full-screen.
//   - n > m: every screen gets one request, each surplus request goes
//     to a uniformly random screen, and screens holding k > 1 requests
//     are partitioned into k equal integer-truncated horizontal slices
//     assigned left-to-right in input order.
//
// The random overflow choice reproduces the established behavior of
// this tool; rng is injectable so tests can pin the sequence. Exactly
// one assignment is produced per request. Screens must be non-empty
// and in ascending ID order.
func Assign(requests []Presentation, screens []screen.Screen, rng *rand.Rand) []Assignment {
	n := len(requests)
	m := len(screens)
	if n == 0 || m == 0 {
		return nil
	}

	if n <= m {
		assignments := make([]Assignment, 0, n)
		for i, req := range requests {
			s := screens[i%m]
			assignments = append(assignments, Assignment{
				Request:  req,
				ScreenID: s.ID,
				Rect:     s.Rect(),
			})
		}
		return assignments
	}

	// Per-screen load: one each, then random placement of the surplus.
	counts := make([]int, m)
	for s := 0; s < m; s++ {
		counts[s] = 1
	}
	for i := 0; i < n-m; i++ {
		counts[rng.Intn(m)]++
	}

	assignments := make([]Assignment, 0, n)
	next := 0
	for s := 0; s < m; s++ {
		scr := screens[s]
		k := counts[s]
		if k == 1 {
			assignments = append(assignments, Assignment{
				Request:  requests[next],
				ScreenID: scr.ID,
				Rect:     scr.Rect(),
			})
			next++
			continue
		}

		// Integer truncation may drop pixels on the right edge of the
		// last slice; accepted, not corrected.
		sliceWidth := scr.Width / k
		for i := 0; i < k; i++ {
			assignments = append(assignments, Assignment{
				Request:  requests[next],
				ScreenID: scr.ID,
				Rect: screen.Rect{
					X:      scr.X + i*sliceWidth,
					Y:      scr.Y,
					Width:  sliceWidth,
					Height: scr.Height,
				},
				Split:      true,
				SplitIndex: i,
				SplitTotal: k,
			})
			next++
		}
	}
	return assignments
}

// resolveScreen returns the screen with the given ID, substituting the
// first screen when the ID is out of range.
func resolveScreen(screens []screen.Screen, id int) screen.Screen {
	for _, s := range screens {
		if s.ID == id {
			return s
		}
	}
	return screens[0]
}
