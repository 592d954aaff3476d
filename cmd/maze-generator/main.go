// Command maze-generator writes a random maze as a level file
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/parameter"
)

func main() {
	var (
		width   = flag.Int("width", parameter.MazeWidth, "maze width in cells (rounded down to odd)")
		height  = flag.Int("height", parameter.MazeHeight, "maze height in cells (rounded down to odd)")
		braid   = flag.Float64("braid", parameter.MazeBraiding, "braiding factor [0.0 - 1.0]")
		seed    = flag.Int64("seed", 0, "generator seed (0 = random)")
		out     = flag.String("out", "", "level file to write (default stdout)")
		preview = flag.Bool("preview", false, "print the maze and solution to stderr")
	)
	flag.Parse()

	if *braid < 0 || *braid > 1 {
		fmt.Fprintf(os.Stderr, "maze-generator: braid %v outside [0,1]\n", *braid)
		os.Exit(2)
	}

	startT := time.Now()
	res := maze.Generate(maze.GeneratorConfig{
		Width:    *width,
		Height:   *height,
		Braiding: *braid,
		Seed:     *seed,
	})
	dur := time.Since(startT)

	if *preview {
		fmt.Fprintf(os.Stderr, "Generated %dx%d in %v\n", res.Grid.Width(), res.Grid.Height(), dur)
		if res.SolutionPath != nil {
			fmt.Fprintf(os.Stderr, "Solution Path Length: %d steps\n", len(res.SolutionPath))
		} else {
			fmt.Fprintln(os.Stderr, "Status: Unsolvable (Isolated Start/Goal)")
		}
		draw(os.Stderr, res)
	}

	if err := write(*out, res.Grid); err != nil {
		fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
		os.Exit(1)
	}
}

func write(path string, g *maze.Grid) error {
	if path == "" {
		return maze.EncodeLevel(os.Stdout, g)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := maze.EncodeLevel(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// draw prints the maze with its solution path
func draw(w io.Writer, res maze.Generated) {
	onPath := make(map[maze.Point]bool, len(res.SolutionPath))
	for _, p := range res.SolutionPath {
		onPath[p] = true
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	res.Grid.Each(func(p maze.Point, c maze.Cell) {
		switch {
		case c == maze.Start:
			bw.WriteRune('S')
		case c == maze.Goal:
			bw.WriteRune('G')
		case c == maze.Wall:
			bw.WriteRune('█')
		case onPath[p]:
			bw.WriteRune('•')
		default:
			bw.WriteRune(' ')
		}
		if p.Col == res.Grid.Width()-1 {
			bw.WriteByte('\n')
		}
	})
}
