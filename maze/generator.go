package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// GeneratorConfig controls random level generation
type GeneratorConfig struct {
	Width, Height int

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph).
	// Higher values add cycles. Constraints (No Plazas/Pillars) take precedence.
	Braiding float64

	StartPos *Point // Optional (nil = top-left room)
	GoalPos  *Point // Optional (nil = bottom-right room)
	Seed     int64  // Optional (0 = Random)
}

// Generated is a generated level plus its solution
type Generated struct {
	Grid         *Grid
	SolutionPath []Point
}

// Generate creates a random walled maze with one start and one goal.
// Dimensions are rounded down to odd numbers (minimum 3) so every room sits on
// odd coordinates surrounded by walls.
func Generate(cfg GeneratorConfig) Generated {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
		for j := range cells[i] {
			cells[i][j] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := resolvePoint(rows, cols, cfg.StartPos, 1, 1)
	goal := resolvePoint(rows, cols, cfg.GoalPos, rows-2, cols-2)

	// Recursive backtracker yields a uniform spanning tree over the rooms
	recursiveBacktracker(cells, start, rng)

	if cfg.Braiding > 0 {
		applySmartBraiding(cells, cfg.Braiding, rng)
	}

	forceOpen(cells, start)
	forceOpen(cells, goal)
	if start == goal {
		goal = farthestFloor(cells, start)
	}
	if start == goal {
		// Single-room maze: knock the goal into the first neighbour
		for _, d := range orthoDirs {
			nr, nc := start.Row+d.Row, start.Col+d.Col
			if nr >= 0 && nr < rows && nc >= 0 && nc < cols {
				goal = Point{nr, nc}
				cells[nr][nc] = Floor
				break
			}
		}
	}

	path := solveBFS(cells, start, goal)

	g := &Grid{width: cols, height: rows, cells: make([]Cell, 0, rows*cols)}
	for _, row := range cells {
		g.cells = append(g.cells, row...)
	}
	// Points were clamped into the grid above; failure is a generator bug
	if err := g.setStart(start); err != nil {
		panic(fmt.Sprintf("maze generator: %v", err))
	}
	if err := g.setGoal(goal); err != nil {
		panic(fmt.Sprintf("maze generator: %v", err))
	}

	return Generated{Grid: g, SolutionPath: path}
}

// --- Core Algorithms ---

var (
	jumpDirs  = []Point{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	orthoDirs = []Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

func recursiveBacktracker(cells [][]Cell, start Point, rng *rand.Rand) {
	rows, cols := len(cells), len(cells[0])

	// Carving runs on odd room coordinates
	if start.Row%2 == 0 || start.Col%2 == 0 || start.Row <= 0 || start.Col <= 0 || start.Row >= rows-1 || start.Col >= cols-1 {
		start = Point{1, 1}
	}

	stack := []Point{start}
	cells[start.Row][start.Col] = Floor

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range jumpDirs {
			nr, nc := curr.Row+d.Row, curr.Col+d.Col
			// Leave 1 cell border for walls
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && cells[nr][nc] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		cells[curr.Row+d.Row/2][curr.Col+d.Col/2] = Floor
		next := Point{curr.Row + d.Row, curr.Col + d.Col}
		cells[next.Row][next.Col] = Floor
		stack = append(stack, next)
	}
}

func applySmartBraiding(cells [][]Cell, probability float64, rng *rand.Rand) {
	rows, cols := len(cells), len(cells[0])

	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			if cells[r][c] == Wall {
				continue
			}

			// Dead end: exactly one open neighbour
			exits := 0
			for _, d := range orthoDirs {
				if cells[r+d.Row][c+d.Col] != Wall {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, jd := range jumpDirs {
				nr, nc := r+jd.Row, c+jd.Col
				wr, wc := r+jd.Row/2, c+jd.Col/2
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				if cells[nr][nc] != Wall && cells[wr][wc] == Wall && canSafelyRemoveWall(cells, wr, wc) {
					candidates = append(candidates, Point{wr, wc})
				}
			}

			if len(candidates) > 0 {
				p := candidates[rng.Intn(len(candidates))]
				cells[p.Row][p.Col] = Floor
			}
		}
	}
}

// canSafelyRemoveWall rejects removals that would open a 2x2 plaza or leave
// an isolated wall pillar
func canSafelyRemoveWall(cells [][]Cell, r, c int) bool {
	rows, cols := len(cells), len(cells[0])

	open := func(tr, tc int) bool {
		if tr < 0 || tr >= rows || tc < 0 || tc >= cols {
			return false
		}
		return cells[tr][tc] != Wall
	}

	// Plazas: any 2x2 quadrant around (r,c) fully open
	if open(r-1, c-1) && open(r-1, c) && open(r, c-1) {
		return false
	}
	if open(r-1, c) && open(r-1, c+1) && open(r, c+1) {
		return false
	}
	if open(r, c-1) && open(r+1, c-1) && open(r+1, c) {
		return false
	}
	if open(r, c+1) && open(r+1, c) && open(r+1, c+1) {
		return false
	}

	// Pillars: every orthogonal wall neighbour keeps another wall connection
	for _, d := range orthoDirs {
		nr, nc := r+d.Row, c+d.Col
		if nr < 0 || nr >= rows || nc < 0 || nc >= cols || cells[nr][nc] != Wall {
			continue
		}
		connections := 0
		for _, d2 := range orthoDirs {
			nnr, nnc := nr+d2.Row, nc+d2.Col
			if nnr == r && nnc == c {
				continue
			}
			if nnr >= 0 && nnr < rows && nnc >= 0 && nnc < cols && cells[nnr][nnc] == Wall {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}

	return true
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func resolvePoint(rows, cols int, p *Point, defRow, defCol int) Point {
	if p == nil {
		return Point{defRow, defCol}
	}
	r, c := p.Row, p.Col
	if r < 0 {
		r = 0
	}
	if r >= rows {
		r = rows - 1
	}
	if c < 0 {
		c = 0
	}
	if c >= cols {
		c = cols - 1
	}
	return Point{r, c}
}

func forceOpen(cells [][]Cell, p Point) {
	rows, cols := len(cells), len(cells[0])
	cells[p.Row][p.Col] = Floor

	for _, d := range orthoDirs {
		nr, nc := p.Row+d.Row, p.Col+d.Col
		if nr >= 0 && nr < rows && nc >= 0 && nc < cols && cells[nr][nc] != Wall {
			return
		}
	}

	// Isolated: connect to the first interior neighbour
	for _, d := range orthoDirs {
		nr, nc := p.Row+d.Row, p.Col+d.Col
		if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 {
			cells[nr][nc] = Floor
			return
		}
	}
}

// farthestFloor returns the open cell with the longest BFS distance from p
func farthestFloor(cells [][]Cell, p Point) Point {
	rows, cols := len(cells), len(cells[0])
	visited := map[Point]bool{p: true}
	queue := []Point{p}
	last := p
	for len(queue) > 0 {
		last = queue[0]
		queue = queue[1:]
		for _, d := range orthoDirs {
			next := Point{last.Row + d.Row, last.Col + d.Col}
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if cells[next.Row][next.Col] != Wall && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return last
}

func solveBFS(cells [][]Cell, start, goal Point) []Point {
	rows, cols := len(cells), len(cells[0])
	if cells[start.Row][start.Col] == Wall || cells[goal.Row][goal.Col] == Wall {
		return nil
	}

	queue := []Point{start}
	cameFrom := make(map[Point]Point)
	visited := map[Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == goal {
			path := []Point{}
			for curr != start {
				path = append([]Point{curr}, path...)
				curr = cameFrom[curr]
			}
			return append([]Point{start}, path...)
		}

		for _, d := range orthoDirs {
			next := Point{curr.Row + d.Row, curr.Col + d.Col}
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if cells[next.Row][next.Col] != Wall && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
