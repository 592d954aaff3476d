package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// DrawView blits v at (x0, y0) with half blocks: each terminal cell shows two
// stacked samples, so v.Height is twice the number of rows drawn
func DrawView(s tcell.Screen, v *View, x0, y0 int) {
	for y := 0; y < v.Height; y += 2 {
		for x := 0; x < v.Width; x++ {
			ch, style := cellFor(v.At(x, y), v.At(x, y+1))
			s.SetContent(x0+x, y0+y/2, ch, nil, style)
		}
	}
}

// cellFor renders two stacked samples as one upper half block
func cellFor(top, bottom Sample) (rune, tcell.Style) {
	style := tcell.StyleDefault.
		Foreground(toColor(top.Color())).
		Background(toColor(bottom.Color()))
	return '▀', style
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// DrawText writes text from (x, y) and returns the column after it
func DrawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
