// Package browser resolves browser kinds to platform launch commands.
package browser

import (
	"os/exec"
	"runtime"
	"strings"
)

// Kind identifies a supported browser. The enumeration is open:
// unrecognized values resolve to the default command.
type Kind string

const (
	Chrome   Kind = "chrome"
	Chromium Kind = "chromium"
	Firefox  Kind = "firefox"
)

// DefaultKind is used when a request names no browser.
const DefaultKind = Chrome

// ParseKind normalizes a browser name from request input. Empty input
// selects the default; anything unrecognized is passed through and will
// resolve to the default command.
func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultKind
	}
	return Kind(s)
}

// Resolver maps a Kind to the command that starts it, honoring per-kind
// overrides from configuration.
type Resolver struct {
	overrides map[string]string
	lookPath  func(file string) (string, error)
}

// NewResolver creates a resolver. overrides maps kind name to command;
// empty values are ignored.
func NewResolver(overrides map[string]string) *Resolver {
	return &Resolver{overrides: overrides, lookPath: exec.LookPath}
}

// Command returns the launch argv for the given kind and URL: the
// resolved browser command followed by a new-window request.
func (r *Resolver) Command(kind Kind, url string) []string {
	return []string{r.resolve(kind), "--new-window", url}
}

func (r *Resolver) resolve(kind Kind) string {
	if r.overrides != nil {
		if cmd := strings.TrimSpace(r.overrides[string(kind)]); cmd != "" {
			return cmd
		}
	}
	return r.platformCommand(kind, runtime.GOOS)
}

func (r *Resolver) platformCommand(kind Kind, goos string) string {
	switch goos {
	case "darwin":
		switch kind {
		case Chromium:
			return "/Applications/Chromium.app/Contents/MacOS/Chromium"
		case Firefox:
			return "/Applications/Firefox.app/Contents/MacOS/firefox"
		default:
			return "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"
		}
	case "windows":
		switch kind {
		case Firefox:
			return "firefox.exe"
		default:
			return "chrome.exe"
		}
	default:
		switch kind {
		case Firefox:
			return "firefox"
		default:
			// Prefer the branded build when installed, else chromium.
			if _, err := r.lookPath("google-chrome"); err == nil {
				return "google-chrome"
			}
			if kind == Chromium {
				return "chromium"
			}
			if _, err := r.lookPath("chromium"); err == nil {
				return "chromium"
			}
			return "google-chrome"
		}
	}
}
