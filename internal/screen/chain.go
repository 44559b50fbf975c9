package screen

import "github.com/charmbracelet/log"

// Chain tries each provider in order and falls back to a synthetic
// screen when all of them fail. Detect never returns an empty list,
// which lets callers skip empty-layout handling entirely.
type Chain struct {
	providers      []Provider
	fallbackWidth  int
	fallbackHeight int
	logger         *log.Logger
}

var _ Provider = (*Chain)(nil)

// NewChain builds a provider chain. fallbackWidth/fallbackHeight size
// the synthetic screen; zero values select the package defaults.
func NewChain(logger *log.Logger, fallbackWidth, fallbackHeight int, providers ...Provider) *Chain {
	return &Chain{
		providers:      providers,
		fallbackWidth:  fallbackWidth,
		fallbackHeight: fallbackHeight,
		logger:         logger,
	}
}

func (c *Chain) Name() string { return "chain" }

// Detect returns the first provider's non-empty result, or the
// synthetic fallback screen. The returned slice is never empty.
func (c *Chain) Detect() ([]Screen, error) {
	for _, p := range c.providers {
		screens, err := p.Detect()
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("screen detection failed", "provider", p.Name(), "err", err)
			}
			continue
		}
		if len(screens) == 0 {
			continue
		}
		return Normalize(screens), nil
	}
	if c.logger != nil {
		c.logger.Warn("no provider detected any screens, using fallback")
	}
	return []Screen{Fallback(c.fallbackWidth, c.fallbackHeight)}, nil
}

// Normalize renumbers screens to 0..n-1 in slice order and ensures
// exactly one carries the primary flag. Providers that cannot detect a
// primary leave every flag false; the first screen is promoted then.
func Normalize(screens []Screen) []Screen {
	out := make([]Screen, len(screens))
	copy(out, screens)

	primarySeen := false
	for i := range out {
		out[i].ID = i
		if out[i].Primary {
			if primarySeen {
				out[i].Primary = false
			}
			primarySeen = true
		}
	}
	if !primarySeen && len(out) > 0 {
		out[0].Primary = true
	}
	return out
}
