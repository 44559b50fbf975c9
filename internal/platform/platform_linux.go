//go:build linux

package platform

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/showwall/internal/config"
	"github.com/1broseidon/showwall/internal/launch"
	"github.com/1broseidon/showwall/internal/screen"
	"github.com/1broseidon/showwall/internal/x11"
)

// New builds the Linux backend: RandR screen detection with a
// screenshot-library fallback, and an EWMH -> wmctrl -> xdotool
// placement chain.
func New(cfg *config.Config, logger *log.Logger) *Backend {
	handle := &x11Handle{}

	provider := screen.NewChain(logger,
		cfg.FallbackScreen.Width, cfg.FallbackScreen.Height,
		&randrProvider{handle: handle},
		screen.ScreenshotProvider{},
	)

	placers := []launch.Placer{
		&ewmhPlacer{handle: handle, stepDelay: cfg.StepDelay()},
		&wmctrlPlacer{timeout: cfg.CommandTimeout(), stepDelay: cfg.StepDelay()},
		&xdotoolPlacer{timeout: cfg.CommandTimeout(), stepDelay: cfg.StepDelay()},
	}

	return &Backend{
		Screens: provider,
		Placers: placers,
		closeFn: handle.close,
	}
}

// x11Handle opens the X11 connection lazily and shares it between the
// screen provider and the EWMH placer.
type x11Handle struct {
	once sync.Once
	conn *x11.Connection
	err  error
}

func (h *x11Handle) get() (*x11.Connection, error) {
	h.once.Do(func() {
		h.conn, h.err = x11.NewConnection()
	})
	return h.conn, h.err
}

func (h *x11Handle) close() {
	if h.conn != nil {
		h.conn.Close()
	}
}

// randrProvider enumerates displays through XRandR.
type randrProvider struct {
	handle *x11Handle
}

var _ screen.Provider = (*randrProvider)(nil)

func (p *randrProvider) Name() string { return "randr" }

func (p *randrProvider) Detect() ([]screen.Screen, error) {
	conn, err := p.handle.get()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	screens := make([]screen.Screen, 0, len(monitors))
	for _, m := range monitors {
		screens = append(screens, screen.Screen{
			ID:      m.ID,
			X:       m.X,
			Y:       m.Y,
			Width:   m.Width,
			Height:  m.Height,
			Primary: m.Primary,
			Name:    m.Name,
		})
	}

	sort.Slice(screens, func(i, j int) bool {
		return screens[i].ID < screens[j].ID
	})
	return screens, nil
}

// ewmhPlacer positions the active window over the X11 connection:
// unmaximize, move/resize, then re-apply fullscreen.
type ewmhPlacer struct {
	handle    *x11Handle
	stepDelay time.Duration
}

var _ launch.Placer = (*ewmhPlacer)(nil)

func (p *ewmhPlacer) Name() string { return "ewmh" }

func (p *ewmhPlacer) Place(rect screen.Rect, fullscreen bool) error {
	conn, err := p.handle.get()
	if err != nil {
		return err
	}

	win, err := conn.GetActiveWindow()
	if err != nil {
		return fmt.Errorf("active window lookup failed: %w", err)
	}
	if win == 0 {
		return fmt.Errorf("no active window")
	}

	if err := conn.MoveResizeWindow(win, rect.X, rect.Y, rect.Width, rect.Height); err != nil {
		return fmt.Errorf("move/resize failed: %w", err)
	}
	time.Sleep(p.stepDelay)

	if fullscreen {
		if err := conn.SetFullscreen(win, true); err != nil {
			return fmt.Errorf("fullscreen failed: %w", err)
		}
	}
	return nil
}

// wmctrlPlacer drives the active window through the wmctrl tool.
type wmctrlPlacer struct {
	timeout   time.Duration
	stepDelay time.Duration
}

var _ launch.Placer = (*wmctrlPlacer)(nil)

func (p *wmctrlPlacer) Name() string { return "wmctrl" }

func (p *wmctrlPlacer) Place(rect screen.Rect, fullscreen bool) error {
	if _, err := exec.LookPath("wmctrl"); err != nil {
		return fmt.Errorf("wmctrl not found: %w", err)
	}

	if _, err := runCommand(p.timeout, "wmctrl", "-r", ":ACTIVE:", "-b", "remove,maximized_vert,maximized_horz"); err != nil {
		return fmt.Errorf("wmctrl unmaximize failed: %w", err)
	}
	time.Sleep(p.stepDelay)

	geometry := fmt.Sprintf("0,%d,%d,%d,%d", rect.X, rect.Y, rect.Width, rect.Height)
	if _, err := runCommand(p.timeout, "wmctrl", "-r", ":ACTIVE:", "-e", geometry); err != nil {
		return fmt.Errorf("wmctrl move failed: %w", err)
	}
	time.Sleep(p.stepDelay)

	if fullscreen {
		if _, err := runCommand(p.timeout, "wmctrl", "-r", ":ACTIVE:", "-b", "add,fullscreen"); err != nil {
			return fmt.Errorf("wmctrl fullscreen failed: %w", err)
		}
	}
	return nil
}

// xdotoolPlacer is the last-resort chain for window managers where the
// EWMH :ACTIVE: selector misbehaves.
type xdotoolPlacer struct {
	timeout   time.Duration
	stepDelay time.Duration
}

var _ launch.Placer = (*xdotoolPlacer)(nil)

func (p *xdotoolPlacer) Name() string { return "xdotool" }

func (p *xdotoolPlacer) Place(rect screen.Rect, fullscreen bool) error {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return fmt.Errorf("xdotool not found: %w", err)
	}

	out, err := runCommand(p.timeout, "xdotool", "getactivewindow")
	if err != nil {
		return fmt.Errorf("xdotool getactivewindow failed: %w", err)
	}
	window := strings.TrimSpace(string(out))
	if window == "" {
		return fmt.Errorf("xdotool reported no active window")
	}

	if _, err := runCommand(p.timeout, "xdotool", "windowmove", window, fmt.Sprint(rect.X), fmt.Sprint(rect.Y)); err != nil {
		return fmt.Errorf("xdotool windowmove failed: %w", err)
	}
	if _, err := runCommand(p.timeout, "xdotool", "windowsize", window, fmt.Sprint(rect.Width), fmt.Sprint(rect.Height)); err != nil {
		return fmt.Errorf("xdotool windowsize failed: %w", err)
	}
	time.Sleep(p.stepDelay)

	if fullscreen {
		if _, err := runCommand(p.timeout, "xdotool", "windowstate", "--add", "FULLSCREEN", window); err != nil {
			return fmt.Errorf("xdotool fullscreen failed: %w", err)
		}
	}
	return nil
}
