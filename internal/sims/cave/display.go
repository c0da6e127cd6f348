package cave

import "image/color"

var cavePalette = []color.RGBA{
	CellEmpty:   {R: 18, G: 16, B: 22, A: 255},
	CellRock:    {R: 120, G: 116, B: 112, A: 255},
	CellSettled: {R: 226, G: 192, B: 96, A: 255},
	CellFlowing: {R: 90, G: 150, B: 210, A: 255},
}

// Palette exposes the color used for each cell state, indexed by Cell.
func (c *Cave) Palette() []color.RGBA {
	return cavePalette
}
