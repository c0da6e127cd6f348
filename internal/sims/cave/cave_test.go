package cave

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aoc-ca/internal/core"
)

func sampleCave(t *testing.T, cfg Config) *Cave {
	t.Helper()
	c, err := Load("testdata/example.txt", cfg)
	require.NoError(t, err)
	return c
}

func floorConfig() Config {
	cfg := DefaultConfig()
	cfg.Floor = true
	return cfg
}

// ledge is a single horizontal rock run below the source with open space on
// both sides.
var ledge = []Segment{{From: Coord{497, 4}, To: Coord{503, 4}}}

func TestPourUntilDoneSample(t *testing.T) {
	require.Equal(t, 24, sampleCave(t, DefaultConfig()).PourUntilDone())
	require.Equal(t, 93, sampleCave(t, floorConfig()).PourUntilDone())
}

func TestPourUntilDoneLedgeWithoutFloor(t *testing.T) {
	first, err := New(ledge, DefaultConfig())
	require.NoError(t, err)
	n := first.PourUntilDone()
	require.Equal(t, 9, n)
	require.Equal(t, OutcomeVoid, first.Last().Kind)
	require.Equal(t, Coord{496, 4}, first.Last().At)
	require.Equal(t, n, first.Settled())

	for i := 0; i < 3; i++ {
		again, err := New(ledge, DefaultConfig())
		require.NoError(t, err)
		require.Equal(t, n, again.PourUntilDone(), "run %d", i)
	}
}

func TestPourUntilDoneLedgeWithFloor(t *testing.T) {
	c, err := New(ledge, floorConfig())
	require.NoError(t, err)

	require.Equal(t, 24, c.PourUntilDone())
	require.True(t, c.Done())
	require.Equal(t, OutcomeSettled, c.Last().Kind)
	require.Equal(t, c.Source(), c.Last().At)

	cell, ok := c.Lookup(c.Source())
	require.True(t, ok)
	require.Equal(t, CellSettled, cell)

	out := c.PourOne()
	require.Equal(t, OutcomeBlocked, out.Kind)
	require.Equal(t, 24, c.PourUntilDone())
}

func TestPourUntilDoneCountsEarlierPours(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), floorConfig()} {
		want := sampleCave(t, cfg).PourUntilDone()

		c := sampleCave(t, cfg)
		for i := 0; i < 5; i++ {
			require.Equal(t, OutcomeSettled, c.PourOne().Kind)
		}
		require.Equal(t, want, c.PourUntilDone())
		require.Equal(t, want, c.Settled())
	}
}

func TestPourOneSequence(t *testing.T) {
	c := sampleCave(t, DefaultConfig())
	want := []Coord{{500, 8}, {499, 8}, {501, 8}, {500, 7}, {498, 8}}
	for i, at := range want {
		out := c.PourOne()
		require.Equal(t, OutcomeSettled, out.Kind, "unit %d", i+1)
		require.Equal(t, at, out.At, "unit %d", i+1)
	}
	require.False(t, c.Done())
}

func TestPourOneNarrowLedgeVoids(t *testing.T) {
	c, err := New([]Segment{{From: Coord{499, 2}, To: Coord{501, 2}}}, DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, Outcome{Kind: OutcomeSettled, At: Coord{500, 1}}, c.PourOne())
	require.Equal(t, Outcome{Kind: OutcomeVoid, At: Coord{498, 2}}, c.PourOne())
	require.True(t, c.Done())
}

func TestPourStopsWhenCupFillsToSource(t *testing.T) {
	cup := []Segment{
		{From: Coord{499, 0}, To: Coord{499, 2}},
		{From: Coord{499, 2}, To: Coord{501, 2}},
		{From: Coord{501, 2}, To: Coord{501, 0}},
	}
	c, err := New(cup, DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, 2, c.PourUntilDone())
	require.Equal(t, c.Source(), c.Last().At)
	require.Equal(t, OutcomeBlocked, c.PourOne().Kind)
}

func TestFloorModeWidensLosslessly(t *testing.T) {
	c := sampleCave(t, floorConfig())
	initial := c.Bounds()

	for !c.Done() {
		before := settledCells(c)
		out := c.PourOne()
		require.Equal(t, OutcomeSettled, out.Kind)
		after := settledCells(c)
		require.Len(t, after, len(before)+1)
		for p := range before {
			require.True(t, after[p], "cell %s lost its sand after pour", p)
		}
		require.True(t, after[out.At])
	}

	grown := c.Bounds()
	require.Less(t, grown.Min.X, initial.Min.X)
	require.Greater(t, grown.Max.X, initial.Max.X)
	require.Equal(t, initial.Max.Y, grown.Max.Y)
	require.Equal(t, 93, c.Settled())

	floor, on := c.Floor()
	require.True(t, on)
	require.Equal(t, 11, floor)
	for x := grown.Min.X; x < grown.Max.X; x++ {
		cell, ok := c.Lookup(Coord{x, floor})
		require.True(t, ok)
		require.Equal(t, CellRock, cell, "floor cell at column %d", x)
	}
}

func TestResizeKeepsCellsAndCoordinates(t *testing.T) {
	c, err := New(ledge, floorConfig())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		c.PourOne()
	}
	before := snapshot(c)
	b := c.Bounds()

	c.Resize(b.Min.X - 4)
	c.Resize(b.Max.X + 2)
	c.Resize(b.Min.X)

	require.Equal(t, b.Min.X-4, c.Bounds().Min.X)
	require.Equal(t, b.Max.X+3, c.Bounds().Max.X)
	for p, cell := range before {
		got, ok := c.Lookup(p)
		require.True(t, ok)
		require.Equal(t, cell, got, "cell %s", p)
	}
	for x := b.Min.X - 4; x < b.Min.X; x++ {
		got, _ := c.Lookup(Coord{x, 2})
		require.Equal(t, CellEmpty, got)
	}
	require.Equal(t, c.Bounds().Dx(), c.Size().W)
	require.Len(t, c.Cells(), c.Size().W*c.Size().H)
}

func TestLookup(t *testing.T) {
	c := sampleCave(t, DefaultConfig())

	cell, ok := c.Lookup(Coord{498, 5})
	require.True(t, ok)
	require.Equal(t, CellRock, cell)

	_, ok = c.Lookup(Coord{493, 5})
	require.False(t, ok)
	_, ok = c.Lookup(Coord{500, 10})
	require.False(t, ok)

	f := sampleCave(t, floorConfig())
	cell, ok = f.Lookup(Coord{-1000, 11})
	require.True(t, ok)
	require.Equal(t, CellRock, cell)
	_, ok = f.Lookup(Coord{-1000, 10})
	require.False(t, ok)
}

func TestPrewidenAvoidsResizing(t *testing.T) {
	cfg := floorConfig()
	cfg.Prewiden = true
	c := sampleCave(t, cfg)
	size := c.Size()

	require.Equal(t, 93, c.PourUntilDone())
	require.Equal(t, size, c.Size())
	require.Equal(t, 0, c.resizes)
}

func TestTrackFlowKeepsAnswers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrackFlow = true
	c := sampleCave(t, cfg)
	require.Equal(t, 24, c.PourUntilDone())

	flowing := 0
	for _, v := range c.Cells() {
		if Cell(v) == CellFlowing {
			flowing++
		}
	}
	require.Positive(t, flowing)

	cfg.Floor = true
	require.Equal(t, 93, sampleCave(t, cfg).PourUntilDone())
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	require.ErrorIs(t, err, ErrNoRock)

	_, err = New([]Segment{{From: Coord{0, 0}, To: Coord{1, 1}}}, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidSegment)

	cfg := DefaultConfig()
	cfg.SourceY = -1
	_, err = New(ledge, cfg)
	require.ErrorIs(t, err, ErrSourceOutOfRange)

	cfg = floorConfig()
	cfg.SourceY = 6
	_, err = New(ledge, cfg)
	require.ErrorIs(t, err, ErrSourceOutOfRange)

	_, err = Load("testdata/missing.txt", DefaultConfig())
	require.Error(t, err)
}

func TestSourceOutsideRockColumns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceX = 520
	c, err := New(ledge, cfg)
	require.NoError(t, err)
	require.Equal(t, 520, c.Bounds().Max.X-1)
	require.Equal(t, 0, c.PourUntilDone())
	require.Equal(t, OutcomeVoid, c.Last().Kind)
}

func TestRandomCavesAreDeterministic(t *testing.T) {
	rng := core.NewRNG(2022)
	for i := 0; i < 25; i++ {
		segments := randomSegments(rng)
		for _, floor := range []bool{false, true} {
			cfg := DefaultConfig()
			cfg.Floor = floor
			a, err := New(segments, cfg)
			require.NoError(t, err)
			b, err := New(segments, cfg)
			require.NoError(t, err)

			n := a.PourUntilDone()
			require.Equal(t, n, b.PourUntilDone())
			require.Equal(t, n, a.Settled())
			if floor {
				require.Equal(t, a.Source(), a.Last().At)
			}
		}
	}
}

func randomSegments(rng *core.RNG) []Segment {
	n := rng.Between(1, 6)
	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		from := Coord{X: rng.Between(490, 510), Y: rng.Between(2, 14)}
		to := from
		if rng.Bool() {
			to.X += rng.Between(-5, 5)
		} else {
			to.Y += rng.Between(0, 4)
		}
		segments = append(segments, Segment{From: from, To: to})
	}
	return segments
}

func settledCells(c *Cave) map[Coord]bool {
	out := map[Coord]bool{}
	for p, cell := range snapshot(c) {
		if cell == CellSettled {
			out[p] = true
		}
	}
	return out
}

func snapshot(c *Cave) map[Coord]Cell {
	out := map[Coord]Cell{}
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := Coord{X: x, Y: y}
			cell, _ := c.Lookup(p)
			out[p] = cell
		}
	}
	return out
}
