//go:build darwin

package platform

import (
	"github.com/charmbracelet/log"

	"github.com/1broseidon/showwall/internal/config"
	"github.com/1broseidon/showwall/internal/screen"
)

// New builds the Darwin backend. Windows are launched but never
// repositioned: there is no placement tool chain on macOS, so the
// placer list stays empty and launches succeed unpositioned.
func New(cfg *config.Config, logger *log.Logger) *Backend {
	provider := screen.NewChain(logger,
		cfg.FallbackScreen.Width, cfg.FallbackScreen.Height,
		screen.ScreenshotProvider{},
	)

	return &Backend{Screens: provider}
}
