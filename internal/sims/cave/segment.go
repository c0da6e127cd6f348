package cave

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Coord is a cell position. Y grows downward.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Segment is a straight horizontal or vertical run of rock between two
// cells, both ends included.
type Segment struct {
	From, To Coord
}

func (s Segment) String() string { return s.From.String() + " -> " + s.To.String() }

// Cells lists every cell covered by the segment.
func (s Segment) Cells() ([]Coord, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	dx, dy := sign(s.To.X-s.From.X), sign(s.To.Y-s.From.Y)
	n := max(abs(s.To.X-s.From.X), abs(s.To.Y-s.From.Y)) + 1
	cells := make([]Coord, 0, n)
	for i, p := 0, s.From; i < n; i++ {
		cells = append(cells, p)
		p = Coord{X: p.X + dx, Y: p.Y + dy}
	}
	return cells, nil
}

func (s Segment) validate() error {
	if s.From.X != s.To.X && s.From.Y != s.To.Y {
		return fmt.Errorf("%w: %s is diagonal", ErrInvalidSegment, s)
	}
	if s.From.Y < 0 || s.To.Y < 0 {
		return fmt.Errorf("%w: %s reaches above row 0", ErrInvalidSegment, s)
	}
	return nil
}

// ParsePaths reads rock paths of the form "x1,y1 -> x2,y2 -> ...", one per
// line, and returns one segment per consecutive pair of points. A path with
// a single point yields a zero-length segment. Blank lines are skipped.
func ParsePaths(r io.Reader) ([]Segment, error) {
	var segments []Segment
	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		points := strings.Split(text, "->")
		prev, err := parseCoord(points[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(points) == 1 {
			segments = append(segments, Segment{From: prev, To: prev})
			continue
		}
		for _, raw := range points[1:] {
			next, err := parseCoord(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			seg := Segment{From: prev, To: next}
			if err := seg.validate(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			segments = append(segments, seg)
			prev = next
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return segments, nil
}

func parseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q is not x,y", ErrMalformedPath, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: bad x in %q", ErrMalformedPath, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: bad y in %q", ErrMalformedPath, s)
	}
	return Coord{X: x, Y: y}, nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
