package maze

import (
	"errors"
	"fmt"
)

// Cell is the kind of one maze grid cell
type Cell uint8

const (
	Floor Cell = iota
	Wall
	Start
	Goal
)

func (c Cell) String() string {
	switch c {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Walkable reports whether the player may occupy a cell of this kind
func (c Cell) Walkable() bool {
	return c != Wall
}

// Point addresses a grid cell by row and column
type Point struct {
	Row, Col int
}

// ErrOutOfRange is returned for any index outside [0,height)×[0,width)
var ErrOutOfRange = errors.New("cell index out of range")

// Grid is the parsed maze: height rows of width cells, row-major.
// A Grid is only mutated by the level loader and the generator; once handed
// to a session it is read-only.
type Grid struct {
	width, height int
	cells         []Cell
	start, goal   Point
}

// MaxCells bounds width×height so a grid header cannot request an
// unallocatable or overflowing cell count
const MaxCells = 1 << 24

// ErrTooLarge is returned for grids above MaxCells cells
var ErrTooLarge = errors.New("grid too large")

// NewGrid returns a width×height grid of Floor cells with no start or goal
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid %dx%d: dimensions must be positive", width, height)
	}
	// Division keeps the check itself from overflowing
	if width > MaxCells/height {
		return nil, fmt.Errorf("grid %dx%d: %w (max %d cells)", width, height, ErrTooLarge, MaxCells)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		start:  Point{-1, -1},
		goal:   Point{-1, -1},
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Start returns the start cell, or (-1,-1) if none was placed
func (g *Grid) Start() Point { return g.start }

// Goal returns the goal cell, or (-1,-1) if none was placed
func (g *Grid) Goal() Point { return g.goal }

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the cell at (row, col)
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Wall, fmt.Errorf("at (%d,%d) in %dx%d grid: %w", row, col, g.width, g.height, ErrOutOfRange)
	}
	return g.cells[row*g.width+col], nil
}

// CellAt returns the cell at p. Everything outside the grid reads as Wall.
func (g *Grid) CellAt(p Point) Cell {
	if !g.InBounds(p.Row, p.Col) {
		return Wall
	}
	return g.cells[p.Row*g.width+p.Col]
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(p Point, c Cell)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(Point{row, col}, g.cells[row*g.width+col])
		}
	}
}

// Count returns the number of cells of the given kind
func (g *Grid) Count(kind Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == kind {
			n++
		}
	}
	return n
}

// Validate checks the loaded-grid invariant: exactly one Start and one Goal
func (g *Grid) Validate() error {
	if n := g.Count(Start); n != 1 {
		return fmt.Errorf("grid has %d start cells, want 1", n)
	}
	if n := g.Count(Goal); n != 1 {
		return fmt.Errorf("grid has %d goal cells, want 1", n)
	}
	return nil
}

func (g *Grid) set(p Point, c Cell) error {
	if !g.InBounds(p.Row, p.Col) {
		return fmt.Errorf("set %s at (%d,%d) in %dx%d grid: %w", c, p.Row, p.Col, g.width, g.height, ErrOutOfRange)
	}
	g.cells[p.Row*g.width+p.Col] = c
	return nil
}

func (g *Grid) setStart(p Point) error {
	if err := g.set(p, Start); err != nil {
		return err
	}
	g.start = p
	return nil
}

func (g *Grid) setGoal(p Point) error {
	if err := g.set(p, Goal); err != nil {
		return err
	}
	g.goal = p
	return nil
}

// String draws the grid one row per line: '#' wall, '.' floor, 'S' start, 'G' goal
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			switch g.cells[row*g.width+col] {
			case Wall:
				buf = append(buf, '#')
			case Start:
				buf = append(buf, 'S')
			case Goal:
				buf = append(buf, 'G')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
