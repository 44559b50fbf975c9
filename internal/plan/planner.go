package plan

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/1broseidon/showwall/internal/browser"
	"github.com/1broseidon/showwall/internal/screen"
)

// Executor launches one browser window into a target rectangle. The
// returned pid means the process was started; placement is best-effort
// and not reflected in the result.
type Executor interface {
	Place(url string, rect screen.Rect, kind browser.Kind) (int, error)
}

// Planner owns one distribution run: detect screens, compute the
// assignment, drive the executor sequentially, and accumulate the
// report. Assignments run strictly one at a time so the window
// manager's "active window" always refers to the window just created.
type Planner struct {
	provider    screen.Provider
	exec        Executor
	interLaunch time.Duration
	logger      *log.Logger

	rng     *rand.Rand
	sleepFn func(time.Duration)
}

// NewPlanner builds a Planner. interLaunch separates consecutive
// launches to avoid window-manager races.
func NewPlanner(provider screen.Provider, exec Executor, interLaunch time.Duration, logger *log.Logger) *Planner {
	return &Planner{
		provider:    provider,
		exec:        exec,
		interLaunch: interLaunch,
		logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		sleepFn:     time.Sleep,
	}
}

// Distribute launches every presentation in the request across the
// detected screens. It never fails as a whole: every failure becomes a
// report entry and the remaining items are still attempted.
func (p *Planner) Distribute(req Request) Report {
	report := Report{
		Success: true,
		Windows: []Window{},
		Errors:  []string{},
	}

	if len(req.Presentations) == 0 {
		report.Success = false
		report.Errors = append(report.Errors, errNoPresentations)
		return report
	}

	screens := p.detectScreens()
	report.Screens = screens

	// Requests without a URL are dropped up front; the rest of the run
	// proceeds with whatever remains.
	valid := make([]Presentation, 0, len(req.Presentations))
	for _, pres := range req.Presentations {
		if strings.TrimSpace(pres.URL) == "" {
			report.Success = false
			report.Errors = append(report.Errors, errMissingURL)
			continue
		}
		valid = append(valid, pres)
	}
	if len(valid) == 0 {
		return report
	}

	assignments := Assign(valid, screens, p.rng)
	p.logger.Info("distributing presentations",
		"requests", len(valid), "screens", len(screens))

	for i, a := range assignments {
		if i > 0 {
			p.sleepFn(p.interLaunch)
		}

		pid, err := p.exec.Place(a.Request.URL, a.Rect, browser.ParseKind(a.Request.Browser))
		if err != nil {
			report.Success = false
			report.Errors = append(report.Errors,
				fmt.Sprintf("Failed to launch window %d on screen %d: %v", i+1, a.ScreenID, err))
			continue
		}

		report.Windows = append(report.Windows, Window{
			ScreenID:   a.ScreenID,
			PID:        pid,
			URL:        a.Request.URL,
			Split:      a.Split,
			SplitIndex: a.SplitIndex,
			SplitTotal: a.SplitTotal,
		})
	}

	return report
}

// LaunchOne launches a single presentation on its requested screen.
// This is the simple path: screen_id is honored here, substituting
// screen 0 when the requested ID exceeds the detected screen count.
func (p *Planner) LaunchOne(pres Presentation) Report {
	report := Report{
		Success: true,
		Windows: []Window{},
		Errors:  []string{},
	}

	if strings.TrimSpace(pres.URL) == "" {
		report.Success = false
		report.Errors = append(report.Errors, errMissingURL)
		return report
	}

	screens := p.detectScreens()
	report.Screens = screens

	id := 0
	if pres.ScreenID != nil {
		id = *pres.ScreenID
	}
	target := resolveScreen(screens, id)

	pid, err := p.exec.Place(pres.URL, target.Rect(), browser.ParseKind(pres.Browser))
	if err != nil {
		report.Success = false
		report.Errors = append(report.Errors,
			fmt.Sprintf("Failed to launch window on screen %d: %v", target.ID, err))
		return report
	}

	report.Windows = append(report.Windows, Window{
		ScreenID: target.ID,
		PID:      pid,
		URL:      pres.URL,
	})
	return report
}

// Screens returns the detected screen list, falling back to the
// synthetic single screen when detection fails outright.
func (p *Planner) Screens() []screen.Screen {
	return p.detectScreens()
}

func (p *Planner) detectScreens() []screen.Screen {
	screens, err := p.provider.Detect()
	if err != nil || len(screens) == 0 {
		if err != nil {
			p.logger.Warn("screen detection failed, using fallback", "err", err)
		}
		return []screen.Screen{screen.Fallback(0, 0)}
	}
	return screens
}
