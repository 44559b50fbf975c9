package plan

import (
	"fmt"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/showwall/internal/browser"
	"github.com/1broseidon/showwall/internal/screen"
)

type stubProvider struct {
	screens []screen.Screen
	err     error
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) Detect() ([]screen.Screen, error) { return s.screens, s.err }

type placeCall struct {
	url  string
	rect screen.Rect
	kind browser.Kind
}

type fakeExecutor struct {
	calls   []placeCall
	failURL string
	nextPID int
}

func (f *fakeExecutor) Place(url string, rect screen.Rect, kind browser.Kind) (int, error) {
	f.calls = append(f.calls, placeCall{url: url, rect: rect, kind: kind})
	if url == f.failURL {
		return 0, fmt.Errorf("spawn failed")
	}
	f.nextPID++
	return 1000 + f.nextPID, nil
}

func newTestPlanner(screens []screen.Screen, exec Executor) *Planner {
	p := NewPlanner(stubProvider{screens: screens}, exec, 0, log.New(io.Discard))
	p.rng = rand.New(rand.NewSource(1))
	p.sleepFn = func(time.Duration) {}
	return p
}

func TestDistribute_EmptyRequestList(t *testing.T) {
	exec := &fakeExecutor{}
	p := newTestPlanner(testScreens(2), exec)

	report := p.Distribute(Request{})

	if report.Success {
		t.Fatalf("expected success=false")
	}
	if len(report.Errors) != 1 || report.Errors[0] != "No presentations to launch" {
		t.Fatalf("expected single no-presentations error, got %v", report.Errors)
	}
	if len(report.Windows) != 0 {
		t.Fatalf("expected no windows, got %d", len(report.Windows))
	}
	if len(exec.calls) != 0 {
		t.Fatalf("expected no launch attempts, got %d", len(exec.calls))
	}
}

func TestDistribute_MissingURLAccumulatesWithoutShortCircuit(t *testing.T) {
	exec := &fakeExecutor{}
	p := newTestPlanner(testScreens(3), exec)

	report := p.Distribute(Request{Presentations: []Presentation{
		{URL: "https://a.example"},
		{URL: ""},
		{URL: "https://c.example"},
	}})

	if report.Success {
		t.Fatalf("expected success=false")
	}
	if len(report.Errors) != 1 || report.Errors[0] != "Missing URL in presentation config" {
		t.Fatalf("expected single missing-URL error, got %v", report.Errors)
	}
	if len(report.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(report.Windows))
	}
	if report.Windows[0].URL != "https://a.example" || report.Windows[1].URL != "https://c.example" {
		t.Fatalf("expected requests 1 and 3 launched, got %+v", report.Windows)
	}
}

func TestDistribute_LaunchFailureDoesNotAbortRun(t *testing.T) {
	exec := &fakeExecutor{failURL: "https://b.example"}
	p := newTestPlanner(testScreens(3), exec)

	report := p.Distribute(Request{Presentations: []Presentation{
		{URL: "https://a.example"},
		{URL: "https://b.example"},
		{URL: "https://c.example"},
	}})

	if report.Success {
		t.Fatalf("expected success=false")
	}
	if len(report.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(report.Windows))
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", report.Errors)
	}
	// All three items were attempted despite the middle failure.
	if len(exec.calls) != 3 {
		t.Fatalf("expected 3 launch attempts, got %d", len(exec.calls))
	}
}

func TestDistribute_TwoRequestsOneScreenSplits(t *testing.T) {
	exec := &fakeExecutor{}
	p := newTestPlanner(testScreens(1), exec)

	report := p.Distribute(Request{Presentations: []Presentation{
		{URL: "https://left.example"},
		{URL: "https://right.example"},
	}})

	if !report.Success {
		t.Fatalf("expected success, errors: %v", report.Errors)
	}
	if len(report.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(report.Windows))
	}
	for i, w := range report.Windows {
		if w.ScreenID != 0 || !w.Split || w.SplitTotal != 2 || w.SplitIndex != i {
			t.Fatalf("window %d: unexpected split metadata %+v", i, w)
		}
	}
	// 1920/2 = 960 wide slices at x=0 and x=960.
	if exec.calls[0].rect != (screen.Rect{X: 0, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("unexpected first slice %+v", exec.calls[0].rect)
	}
	if exec.calls[1].rect != (screen.Rect{X: 960, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("unexpected second slice %+v", exec.calls[1].rect)
	}
}

func TestDistribute_RoundRobinScreensAndBrowserKindPassthrough(t *testing.T) {
	exec := &fakeExecutor{}
	p := newTestPlanner(testScreens(2), exec)

	report := p.Distribute(Request{Presentations: []Presentation{
		{URL: "https://a.example", Browser: "firefox"},
		{URL: "https://b.example"},
	}})

	if !report.Success {
		t.Fatalf("expected success, errors: %v", report.Errors)
	}
	if report.Windows[0].ScreenID != 0 || report.Windows[1].ScreenID != 1 {
		t.Fatalf("expected round-robin screens 0,1, got %+v", report.Windows)
	}
	if exec.calls[0].kind != browser.Firefox {
		t.Fatalf("expected firefox for first call, got %q", exec.calls[0].kind)
	}
	if exec.calls[1].kind != browser.Chrome {
		t.Fatalf("expected default chrome for second call, got %q", exec.calls[1].kind)
	}
}

func TestDistribute_DetectionFailureUsesFallbackScreen(t *testing.T) {
	exec := &fakeExecutor{}
	p := NewPlanner(stubProvider{err: fmt.Errorf("no display")}, exec, 0, log.New(io.Discard))
	p.sleepFn = func(time.Duration) {}

	report := p.Distribute(Request{Presentations: []Presentation{{URL: "https://a.example"}}})

	if !report.Success {
		t.Fatalf("expected success, errors: %v", report.Errors)
	}
	if len(report.Screens) != 1 || report.Screens[0].Width != screen.FallbackWidth {
		t.Fatalf("expected synthetic fallback screen, got %+v", report.Screens)
	}
}

func TestDistribute_InterLaunchDelayBetweenLaunches(t *testing.T) {
	exec := &fakeExecutor{}
	p := NewPlanner(stubProvider{screens: testScreens(3)}, exec, 500*time.Millisecond, log.New(io.Discard))
	p.rng = rand.New(rand.NewSource(1))

	var sleeps []time.Duration
	p.sleepFn = func(d time.Duration) { sleeps = append(sleeps, d) }

	p.Distribute(Request{Presentations: testRequests(3)})

	// One delay between each pair of consecutive launches.
	if len(sleeps) != 2 {
		t.Fatalf("expected 2 inter-launch delays, got %d", len(sleeps))
	}
	for _, d := range sleeps {
		if d != 500*time.Millisecond {
			t.Fatalf("expected 500ms delay, got %s", d)
		}
	}
}

func TestLaunchOne_OutOfRangeScreenFallsBackToZero(t *testing.T) {
	exec := &fakeExecutor{}
	p := newTestPlanner(testScreens(2), exec)

	want := 7
	report := p.LaunchOne(Presentation{URL: "https://a.example", ScreenID: &want})

	if !report.Success {
		t.Fatalf("expected success, errors: %v", report.Errors)
	}
	if len(report.Windows) != 1 || report.Windows[0].ScreenID != 0 {
		t.Fatalf("expected fallback to screen 0, got %+v", report.Windows)
	}
	if exec.calls[0].rect != testScreens(2)[0].Rect() {
		t.Fatalf("expected full rect of screen 0, got %+v", exec.calls[0].rect)
	}
}

func TestLaunchOne_HonorsExplicitScreen(t *testing.T) {
	exec := &fakeExecutor{}
	p := newTestPlanner(testScreens(3), exec)

	want := 2
	report := p.LaunchOne(Presentation{URL: "https://a.example", ScreenID: &want})

	if len(report.Windows) != 1 || report.Windows[0].ScreenID != 2 {
		t.Fatalf("expected screen 2, got %+v", report.Windows)
	}
}
