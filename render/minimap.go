package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/engine"
	"github.com/lixenwraith/maze-walk/maze"
)

// Minimap draws the explored part of g around the player, one rune per cell.
// A cell shows once it or a neighbour has been visited. At most maxCells
// rows and columns are drawn, centred on the player where the grid allows.
func Minimap(g *maze.Grid, explored func(maze.Point) bool, player maze.Point, dir mgl32.Vec3, maxCells int) []string {
	r0, rows := window(player.Row, g.Height(), maxCells)
	c0, cols := window(player.Col, g.Width(), maxCells)

	lines := make([]string, 0, rows)
	var sb strings.Builder
	for r := r0; r < r0+rows; r++ {
		sb.Reset()
		for c := c0; c < c0+cols; c++ {
			p := maze.Point{Row: r, Col: c}
			switch {
			case p == player:
				sb.WriteRune(headingRune(dir))
			case !seen(p, explored):
				sb.WriteByte(' ')
			default:
				switch g.CellAt(p) {
				case maze.Wall:
					sb.WriteByte('#')
				case maze.Start:
					sb.WriteByte('S')
				case maze.Goal:
					sb.WriteByte('G')
				default:
					sb.WriteByte('.')
				}
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func seen(p maze.Point, explored func(maze.Point) bool) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if explored(maze.Point{Row: p.Row + dr, Col: p.Col + dc}) {
				return true
			}
		}
	}
	return false
}

// window returns the first index and length of a span of at most size
// entries of [0,n) centred on at
func window(at, n, size int) (first, length int) {
	if size <= 0 || n <= size {
		return 0, n
	}
	first = at - size/2
	if first < 0 {
		first = 0
	}
	if first+size > n {
		first = n - size
	}
	return first, size
}

func headingRune(dir mgl32.Vec3) rune {
	x, z := dir.X(), dir.Z()
	if abs32(z) >= abs32(x) {
		if z < 0 {
			return '^'
		}
		return 'v'
	}
	if x > 0 {
		return '>'
	}
	return '<'
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// StatusLine is the one-line HUD text for a frame
func StatusLine(f engine.Frame, muted bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " cell %d,%d  explored %d  %s", f.Cell.Row, f.Cell.Col, f.Explored, f.Elapsed.Truncate(100*time.Millisecond))
	if f.Won {
		sb.WriteString("  GOAL REACHED")
	}
	if muted {
		sb.WriteString("  [muted]")
	}
	sb.WriteString("  wasd move  q/e turn  tab map  m mute  r restart  esc quit")
	return sb.String()
}
