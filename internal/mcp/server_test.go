package mcp

import (
	"context"
	"io"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/showwall/internal/browser"
	"github.com/1broseidon/showwall/internal/plan"
	"github.com/1broseidon/showwall/internal/screen"
)

type stubProvider struct {
	screens []screen.Screen
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) Detect() ([]screen.Screen, error) { return s.screens, nil }

type fakeExecutor struct {
	urls []string
}

func (f *fakeExecutor) Place(url string, rect screen.Rect, kind browser.Kind) (int, error) {
	f.urls = append(f.urls, url)
	return 100 + len(f.urls), nil
}

func newTestServer(screens []screen.Screen, exec plan.Executor) *Server {
	logger := log.New(io.Discard)
	planner := plan.NewPlanner(stubProvider{screens: screens}, exec, 0, logger)
	return NewServer(planner, logger)
}

func TestHandleListScreens(t *testing.T) {
	s := newTestServer([]screen.Screen{
		{ID: 0, Width: 1920, Height: 1080, Primary: true, Name: "eDP-1"},
		{ID: 1, X: 1920, Width: 1280, Height: 1024},
	}, &fakeExecutor{})

	_, out, err := s.handleListScreens(context.Background(), nil, ListScreensInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.System != runtime.GOOS {
		t.Fatalf("expected system %q, got %q", runtime.GOOS, out.System)
	}
	if len(out.Screens) != 2 {
		t.Fatalf("expected 2 screens, got %d", len(out.Screens))
	}
	if !out.Screens[0].Primary || out.Screens[0].Name != "eDP-1" {
		t.Fatalf("unexpected first screen %+v", out.Screens[0])
	}
}

func TestHandleLaunchPresentations(t *testing.T) {
	exec := &fakeExecutor{}
	s := newTestServer([]screen.Screen{{ID: 0, Width: 1920, Height: 1080, Primary: true}}, exec)

	_, out, err := s.handleLaunchPresentations(context.Background(), nil, LaunchPresentationsInput{
		Presentations: []PresentationInput{
			{URL: "https://a.example"},
			{URL: "https://b.example", Browser: "firefox"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success, errors: %v", out.Errors)
	}
	// Two presentations on one screen split into two panes.
	if len(out.Windows) != 2 || !out.Windows[0].Split {
		t.Fatalf("expected 2 split windows, got %+v", out.Windows)
	}
	if len(exec.urls) != 2 {
		t.Fatalf("expected 2 launches, got %d", len(exec.urls))
	}
}

func TestHandleLaunchWindow_OutOfRangeScreen(t *testing.T) {
	exec := &fakeExecutor{}
	s := newTestServer([]screen.Screen{{ID: 0, Width: 1920, Height: 1080, Primary: true}}, exec)

	_, out, err := s.handleLaunchWindow(context.Background(), nil, LaunchWindowInput{
		URL:      "https://a.example",
		ScreenID: 9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success || out.ScreenID != 0 {
		t.Fatalf("expected fallback to screen 0, got %+v", out)
	}
}
