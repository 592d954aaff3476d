package engine

import (
	"fmt"

	"github.com/lixenwraith/maze-walk/config"
)

// Load builds a session from cfg: the configured maze, keymap, navigation
// tuning, grass density and seed. Callbacks in opts are kept.
func Load(cfg *config.Config, clock Clock, opts Options) (*Session, error) {
	g, err := cfg.LoadGrid()
	if err != nil {
		return nil, err
	}
	km, err := cfg.Keymap()
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}

	opts.GrassDensity = cfg.GrassDensity
	opts.Seed = cfg.Seed
	opts.Keymap = km
	opts.Navigation = cfg.NavigationSettings()
	return NewSession(g, clock, opts)
}
