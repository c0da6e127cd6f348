package cave

import (
	"fmt"

	"github.com/gorilla/schema"
)

// Config controls how a cave is built and poured.
type Config struct {
	// Input is the rock path file used by the registry factory. Empty means
	// the bundled sample.
	Input string `schema:"input"`

	// Floor enables the infinite floor two rows below the lowest rock.
	Floor bool `schema:"floor"`

	SourceX int `schema:"source_x"`
	SourceY int `schema:"source_y"`

	// TrackFlow marks the cells a unit falls through as flowing.
	TrackFlow bool `schema:"track_flow"`

	// Prewiden sizes a floor-mode cave for the widest possible pile up front
	// so it never grows while pouring.
	Prewiden bool `schema:"prewiden"`

	// Rate is the number of units poured per Step.
	Rate int `schema:"rate"`
}

// DefaultConfig returns the standard configuration: source at 500,0 and no
// floor.
func DefaultConfig() Config {
	return Config{
		SourceX: 500,
		SourceY: 0,
		Rate:    1,
	}
}

// Source returns the coordinate where new units enter.
func (c Config) Source() Coord { return Coord{X: c.SourceX, Y: c.SourceY} }

func (c Config) normalized() Config {
	if c.Rate <= 0 {
		c.Rate = 1
	}
	return c
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Keys missing from the map keep their defaults.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if len(cfg) == 0 {
		return c, nil
	}
	values := make(map[string][]string, len(cfg))
	for k, v := range cfg {
		values[k] = []string{v}
	}
	if err := decoder.Decode(&c, values); err != nil {
		return DefaultConfig(), fmt.Errorf("cave config: %w", err)
	}
	return c.normalized(), nil
}
