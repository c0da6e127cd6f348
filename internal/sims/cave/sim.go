package cave

import (
	"aoc-ca/internal/core"
)

// Name returns the simulation identifier.
func (c *Cave) Name() string { return "cave" }

// Size reports the current grid dimensions. It grows in floor mode unless
// the cave was prewidened.
func (c *Cave) Size() core.Size { return core.Size{W: c.grid.W, H: c.grid.H} }

// Cells exposes the grid cells, one Cell value per byte in row-major order.
// The slice is replaced when the grid widens.
func (c *Cave) Cells() []uint8 { return c.grid.Cells() }

// Reset rebuilds the cave from its rock segments. Pouring is deterministic,
// so the seed is ignored.
func (c *Cave) Reset(int64) {
	if err := c.build(); err != nil {
		// New already built from the same segments and config.
		Log.WithError(err).Error("cave reset failed")
	}
}

// Step pours up to Rate units, stopping early once the cave is done.
func (c *Cave) Step() {
	for i := 0; i < c.cfg.Rate && !c.done; i++ {
		c.PourOne()
	}
}

func init() {
	core.Register("cave", func(m map[string]string) (core.Sim, error) {
		cfg, err := FromMap(m)
		if err != nil {
			return nil, err
		}
		if cfg.Input == "" {
			return Sample(cfg)
		}
		return Load(cfg.Input, cfg)
	})
}
