package cave

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

var cellGlyphs = [...]byte{
	CellEmpty:   '.',
	CellRock:    '#',
	CellSettled: 'o',
	CellFlowing: '~',
}

// Render writes the grid as text: column numbers written vertically on top,
// then one line per row prefixed by its number. The source shows as '+'
// while its cell is empty.
func (c *Cave) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	b := c.Bounds()

	digits := max(len(strconv.Itoa(b.Min.X)), len(strconv.Itoa(b.Max.X-1)))
	labels := make([]string, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		labels = append(labels, fmt.Sprintf("%*d", digits, x))
	}
	for i := 0; i < digits; i++ {
		bw.WriteString("    ")
		for _, label := range labels {
			bw.WriteByte(label[i])
		}
		bw.WriteByte('\n')
	}

	src := c.Source()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		fmt.Fprintf(bw, "%3d ", y)
		for x := b.Min.X; x < b.Max.X; x++ {
			p := Coord{X: x, Y: y}
			cell, _ := c.Lookup(p)
			if p == src && cell == CellEmpty {
				bw.WriteByte('+')
				continue
			}
			bw.WriteByte(glyph(cell))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func glyph(cell Cell) byte {
	if int(cell) < len(cellGlyphs) {
		return cellGlyphs[cell]
	}
	return '?'
}
