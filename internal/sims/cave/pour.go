package cave

import "github.com/sirupsen/logrus"

// OutcomeKind tells how a single pour ended.
type OutcomeKind uint8

const (
	// OutcomeSettled means the unit came to rest at Outcome.At.
	OutcomeSettled OutcomeKind = iota
	// OutcomeVoid means the unit left the grid at Outcome.At and is lost.
	OutcomeVoid
	// OutcomeBlocked means the source was already occupied and no unit entered.
	OutcomeBlocked
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSettled:
		return "settled"
	case OutcomeVoid:
		return "void"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Outcome is the result of pouring one unit.
type Outcome struct {
	Kind OutcomeKind
	At   Coord
}

// fallOrder lists the moves a unit tries, in priority order.
var fallOrder = [3]Coord{
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
}

func passable(cell Cell) bool {
	return cell == CellEmpty || cell == CellFlowing
}

// PourOne drops a single unit from the source. At each step the unit moves
// to the first free cell of: straight down, down-left, down-right. When all
// three are occupied it settles where it is.
//
// Without a floor, a move that leaves the grid sends the unit into the void.
// With a floor, the grid is widened first and the move re-checked; the floor
// row always blocks, so every unit eventually settles.
func (c *Cave) PourOne() Outcome {
	src := c.Source()
	if cell, _ := c.Lookup(src); !passable(cell) {
		return c.finish(Outcome{Kind: OutcomeBlocked, At: src})
	}

	pos := src
	for {
		c.markFlow(pos)
		moved := false
		for _, d := range fallOrder {
			next := Coord{X: pos.X + d.X, Y: pos.Y + d.Y}
			cell, ok := c.Lookup(next)
			if !ok {
				if !c.cfg.Floor {
					c.voided++
					return c.finish(Outcome{Kind: OutcomeVoid, At: next})
				}
				c.Resize(next.X)
				cell, _ = c.Lookup(next)
			}
			if passable(cell) {
				pos = next
				moved = true
				break
			}
		}
		if !moved {
			c.set(pos, CellSettled)
			c.settled++
			return c.finish(Outcome{Kind: OutcomeSettled, At: pos})
		}
	}
}

func (c *Cave) markFlow(p Coord) {
	if !c.cfg.TrackFlow {
		return
	}
	if cell, ok := c.Lookup(p); ok && cell == CellEmpty {
		c.set(p, CellFlowing)
	}
}

func (c *Cave) finish(out Outcome) Outcome {
	c.last = out
	switch {
	case out.Kind == OutcomeVoid:
		c.done = true
		Log.WithFields(logrus.Fields{"at": out.At.String(), "settled": c.settled}).Debug("unit fell into the void")
	case out.Kind == OutcomeBlocked:
		c.done = true
		Log.WithFields(logrus.Fields{"source": out.At.String()}).Debug("source blocked")
	case out.At == c.Source():
		c.done = true
		Log.WithFields(logrus.Fields{"settled": c.settled}).Debug("unit settled on the source")
	}
	return out
}

// PourUntilDone pours units until the cave is done and returns the total
// number of settled units, including any poured before the call. Without a
// floor that is the count before the first unit falls into the void; with a
// floor it includes the unit that finally settles on the source.
func (c *Cave) PourUntilDone() int {
	for !c.done {
		c.PourOne()
	}
	return c.settled
}
