package screen

import (
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type stubProvider struct {
	screens []Screen
	err     error
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) Detect() ([]Screen, error) { return s.screens, s.err }

func TestChain_FirstWorkingProviderWins(t *testing.T) {
	chain := NewChain(log.New(io.Discard), 0, 0,
		stubProvider{err: fmt.Errorf("no display")},
		stubProvider{screens: []Screen{{ID: 0, Width: 800, Height: 600, Primary: true}}},
	)

	screens, err := chain.Detect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(screens) != 1 || screens[0].Width != 800 {
		t.Fatalf("expected second provider's screen, got %+v", screens)
	}
}

func TestChain_AllProvidersFailYieldsFallback(t *testing.T) {
	chain := NewChain(log.New(io.Discard), 0, 0,
		stubProvider{err: fmt.Errorf("no display")},
		stubProvider{}, // empty result counts as a failed detection
	)

	screens, err := chain.Detect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(screens) != 1 {
		t.Fatalf("expected exactly one fallback screen, got %d", len(screens))
	}
	s := screens[0]
	if s.Width != FallbackWidth || s.Height != FallbackHeight || !s.Primary || s.X != 0 || s.Y != 0 {
		t.Fatalf("unexpected fallback screen %+v", s)
	}
}

func TestChain_FallbackDimensionsConfigurable(t *testing.T) {
	chain := NewChain(log.New(io.Discard), 2560, 1440)

	screens, _ := chain.Detect()
	if screens[0].Width != 2560 || screens[0].Height != 1440 {
		t.Fatalf("expected 2560x1440 fallback, got %+v", screens[0])
	}
}

func TestNormalize_RenumbersAndPromotesPrimary(t *testing.T) {
	screens := Normalize([]Screen{
		{ID: 3, Width: 1920, Height: 1080},
		{ID: 7, Width: 1280, Height: 720},
	})

	if screens[0].ID != 0 || screens[1].ID != 1 {
		t.Fatalf("expected IDs renumbered to 0,1, got %d,%d", screens[0].ID, screens[1].ID)
	}
	// No provider-reported primary: the first screen is promoted.
	if !screens[0].Primary || screens[1].Primary {
		t.Fatalf("expected only screen 0 primary, got %+v", screens)
	}
}

func TestNormalize_KeepsSinglePrimary(t *testing.T) {
	screens := Normalize([]Screen{
		{ID: 0, Width: 1920, Height: 1080, Primary: true},
		{ID: 1, Width: 1920, Height: 1080, Primary: true},
	})

	if !screens[0].Primary || screens[1].Primary {
		t.Fatalf("expected exactly one primary, got %+v", screens)
	}
}

func TestFallback_ZeroDimensionsUseDefaults(t *testing.T) {
	s := Fallback(0, -1)
	if s.Width != FallbackWidth || s.Height != FallbackHeight {
		t.Fatalf("expected default dimensions, got %dx%d", s.Width, s.Height)
	}
}
