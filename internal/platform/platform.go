// Package platform assembles the screen provider and window placement
// chain for the current platform. Core logic depends only on the
// capability interfaces, never on platform identity.
package platform

import (
	"context"
	"os/exec"
	"time"

	"github.com/1broseidon/showwall/internal/launch"
	"github.com/1broseidon/showwall/internal/screen"
)

// Backend bundles the platform capabilities.
type Backend struct {
	// Screens enumerates displays and never returns an empty list.
	Screens screen.Provider
	// Placers is the window manipulation chain, primary tool first.
	// Empty on platforms without placement support.
	Placers []launch.Placer

	closeFn func()
}

// Close releases any platform resources (e.g. the X11 connection).
func (b *Backend) Close() {
	if b != nil && b.closeFn != nil {
		b.closeFn()
	}
}

// runCommand executes an external tool bounded by timeout. A hung
// window-manager tool must not stall the whole distribution run.
func runCommand(timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Output()
}
