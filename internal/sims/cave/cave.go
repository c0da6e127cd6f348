// Package cave simulates sand pouring into a cave of rock ledges. Units of
// sand enter at a fixed source and fall until they come to rest or drop
// into the void below the lowest rock. In floor mode an endless floor two
// rows below the lowest rock catches everything, and the grid widens as the
// pile spreads.
package cave

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"os"
	"slices"

	"github.com/sirupsen/logrus"

	"aoc-ca/internal/core"
)

// Log receives debug traces of grid growth and pour termination.
var Log = logrus.New()

//go:embed sample.txt
var sampleInput []byte

// Cell enumerates the grid cell states. The values double as palette indices.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellRock
	CellSettled
	CellFlowing
)

// Cave is the pour simulation grid. It is not safe for concurrent use.
type Cave struct {
	cfg      Config
	segments []Segment

	grid   *core.ByteGrid
	minX   int
	lowest int
	floorY int

	settled int
	voided  int
	resizes int
	last    Outcome
	done    bool
}

// New builds a cave from rock segments.
func New(segments []Segment, cfg Config) (*Cave, error) {
	if len(segments) == 0 {
		return nil, ErrNoRock
	}
	for _, s := range segments {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	c := &Cave{cfg: cfg.normalized(), segments: slices.Clone(segments)}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads rock paths from path and builds a cave from them. The path is
// recorded as the config's Input.
func Load(path string, cfg Config) (*Cave, error) {
	cfg.Input = path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load cave: %w", err)
	}
	return parseAndBuild(data, cfg)
}

// Sample builds the bundled example cave.
func Sample(cfg Config) (*Cave, error) {
	return parseAndBuild(sampleInput, cfg)
}

func parseAndBuild(data []byte, cfg Config) (*Cave, error) {
	segments, err := ParsePaths(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return New(segments, cfg)
}

func (c *Cave) build() error {
	src := c.cfg.Source()
	if src.Y < 0 {
		return fmt.Errorf("%w: %s is above row 0", ErrSourceOutOfRange, src)
	}

	minX, maxX, lowest := src.X, src.X, 0
	for _, s := range c.segments {
		for _, p := range [2]Coord{s.From, s.To} {
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			lowest = max(lowest, p.Y)
		}
	}

	height := max(lowest, src.Y) + 1
	floorY := lowest + 2
	if c.cfg.Floor {
		if src.Y >= floorY {
			return fmt.Errorf("%w: %s is not above floor row %d", ErrSourceOutOfRange, src, floorY)
		}
		height = floorY + 1
		if c.cfg.Prewiden {
			span := floorY - 1 - src.Y
			minX = min(minX, src.X-span)
			maxX = max(maxX, src.X+span)
		}
	}

	c.grid = core.NewByteGrid(maxX-minX+1, height)
	c.minX = minX
	c.lowest = lowest
	c.floorY = floorY
	c.settled, c.voided, c.resizes = 0, 0, 0
	c.last = Outcome{}
	c.done = false

	for _, s := range c.segments {
		cells, err := s.Cells()
		if err != nil {
			return err
		}
		for _, p := range cells {
			c.set(p, CellRock)
		}
	}
	c.fillFloor()
	return nil
}

func (c *Cave) fillFloor() {
	if !c.cfg.Floor {
		return
	}
	for x := 0; x < c.grid.W; x++ {
		c.grid.Set(x, c.floorY, uint8(CellRock))
	}
}

// Config returns the configuration the cave was built with.
func (c *Cave) Config() Config { return c.cfg }

// Source returns the coordinate where units enter.
func (c *Cave) Source() Coord { return c.cfg.Source() }

// Floor returns the floor row and whether floor mode is active.
func (c *Cave) Floor() (int, bool) { return c.floorY, c.cfg.Floor }

// Lowest returns the row of the lowest rock.
func (c *Cave) Lowest() int { return c.lowest }

// Bounds returns the addressable area in cave coordinates. Max is exclusive.
func (c *Cave) Bounds() image.Rectangle {
	return image.Rect(c.minX, 0, c.minX+c.grid.W, c.grid.H)
}

// Settled returns the number of units at rest.
func (c *Cave) Settled() int { return c.settled }

// Done reports whether pouring has stopped: a unit fell into the void, the
// source became blocked, or a unit settled on the source.
func (c *Cave) Done() bool { return c.done }

// Last returns the outcome of the most recent pour.
func (c *Cave) Last() Outcome { return c.last }

// Lookup returns the state of the cell at p. The boolean is false when p
// lies outside the grid. In floor mode every cell of the floor row is rock,
// however far it is from the current columns.
func (c *Cave) Lookup(p Coord) (Cell, bool) {
	if c.cfg.Floor && p.Y == c.floorY {
		return CellRock, true
	}
	x := p.X - c.minX
	if !c.grid.InBounds(x, p.Y) {
		return CellEmpty, false
	}
	return Cell(c.grid.At(x, p.Y)), true
}

// Resize widens the grid so column x is addressable. Existing cells keep
// their state and coordinates; new cells are empty except on the floor row.
func (c *Cave) Resize(x int) {
	left, right := 0, 0
	if x < c.minX {
		left = c.minX - x
	}
	if last := c.minX + c.grid.W - 1; x > last {
		right = x - last
	}
	if left == 0 && right == 0 {
		return
	}
	c.grid.GrowColumns(left, right)
	c.minX -= left
	c.resizes++
	c.fillFloor()
	Log.WithFields(logrus.Fields{
		"column": x,
		"left":   left,
		"right":  right,
		"width":  c.grid.W,
	}).Debug("cave widened")
}

func (c *Cave) set(p Coord, cell Cell) {
	c.grid.Set(p.X-c.minX, p.Y, uint8(cell))
}
