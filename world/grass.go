package world

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/maze"
)

// ScatterGrass emits density×density jittered blade positions over every
// Floor cell. Sample (i, j) sits at i/density + U[0,1) across the cell on x and
// j/density + U[0,1) on z, so all samples stay inside the 2-unit footprint.
// Start, Goal and Wall cells stay bare.
func ScatterGrass(g *maze.Grid, density int, rng *rand.Rand) []mgl32.Vec3 {
	if density <= 0 {
		return nil
	}

	points := make([]mgl32.Vec3, 0, g.Count(maze.Floor)*density*density)
	step := 1 / float32(density)

	g.Each(func(p maze.Point, c maze.Cell) {
		if c != maze.Floor {
			return
		}
		origin := CellOrigin(p, g.Width(), g.Height())
		for i := 0; i < density; i++ {
			for j := 0; j < density; j++ {
				x := float32(i)*step + rng.Float32()
				z := float32(j)*step + rng.Float32()
				points = append(points, mgl32.Vec3{origin.X() + x, 0, origin.Z() + z})
			}
		}
	})

	return points
}
