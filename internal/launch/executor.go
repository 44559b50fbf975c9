// Package launch starts browser windows and positions them best-effort.
package launch

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/showwall/internal/browser"
	"github.com/1broseidon/showwall/internal/screen"
)

// Placer manipulates the currently active window. Implementations are
// best-effort: window managers vary widely in compliance, and a Placer
// error only means the next tool in the chain should be tried.
type Placer interface {
	// Name identifies the tool in logs.
	Name() string
	// Place moves and resizes the active window to rect and optionally
	// re-applies fullscreen state.
	Place(rect screen.Rect, fullscreen bool) error
}

// Executor launches a browser showing a URL and drives the placement
// tool chain against the newly created window. Launch success and
// placement success are decoupled: a returned pid only guarantees the
// process was started.
type Executor struct {
	resolver   *browser.Resolver
	placers    []Placer
	settle     time.Duration
	fullscreen bool
	logger     *log.Logger

	// spawnFn and sleepFn are replaced in tests.
	spawnFn func(argv []string) (int, error)
	sleepFn func(time.Duration)
}

// NewExecutor builds an Executor. placers are tried in order until one
// succeeds; an empty chain skips positioning entirely.
func NewExecutor(resolver *browser.Resolver, placers []Placer, settle time.Duration, fullscreen bool, logger *log.Logger) *Executor {
	return &Executor{
		resolver:   resolver,
		placers:    placers,
		settle:     settle,
		fullscreen: fullscreen,
		logger:     logger,
		spawnFn:    spawnDetached,
		sleepFn:    time.Sleep,
	}
}

// Place starts a browser window for url and best-effort positions it
// into rect. The only hard failure is the spawn itself; every
// positioning failure is logged and swallowed.
func (e *Executor) Place(url string, rect screen.Rect, kind browser.Kind) (int, error) {
	argv := e.resolver.Command(kind, url)

	pid, err := e.spawnFn(argv)
	if err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}
	e.logger.Debug("browser started", "cmd", argv[0], "pid", pid, "url", url)

	// Blind wait for the window to materialize. There is no reliable
	// cross-platform window-created signal at this layer.
	e.sleepFn(e.settle)

	for _, p := range e.placers {
		if err := p.Place(rect, e.fullscreen); err != nil {
			e.logger.Warn("window placement failed", "tool", p.Name(), "err", err)
			continue
		}
		e.logger.Debug("window placed", "tool", p.Name(),
			"x", rect.X, "y", rect.Y, "width", rect.Width, "height", rect.Height)
		return pid, nil
	}

	// Placement never fails the launch: the window is up, just not
	// where it was asked to be.
	if len(e.placers) > 0 {
		e.logger.Warn("all placement tools failed, window left unpositioned", "url", url)
	}
	return pid, nil
}

// spawnDetached starts argv with stdio detached from the caller and
// reaps the child in the background. Browsers are long-lived; the
// launch is fire-and-forget.
func spawnDetached(argv []string) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	go cmd.Wait()
	return pid, nil
}
