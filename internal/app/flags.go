package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	SPS   int
	Seed  int64
	HUD   int

	Input string
	Floor bool
	Set   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "cave", Scale: 4, TPS: 60, SPS: 30, Seed: 42, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the parameter panel in pixels (0 hides it)")
	fs.StringVar(&c.Input, "input", c.Input, "puzzle input file (empty uses the bundled sample)")
	fs.BoolVar(&c.Floor, "floor", c.Floor, "pour onto an endless floor below the lowest rock")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// SimConfig builds the key/value map handed to the sim factory. Explicit
// -set overrides win over the dedicated flags.
func (c *Config) SimConfig() (map[string]string, error) {
	m := map[string]string{}
	if c.Input != "" {
		m["input"] = c.Input
	}
	if c.Floor {
		m["floor"] = strconv.FormatBool(c.Floor)
		m["prewiden"] = "true"
	}
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid -set %q: want key=value", kv)
		}
		m[key] = value
	}
	return m, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
