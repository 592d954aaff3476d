package asset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMalformedMesh marks a mesh description that cannot be parsed
var ErrMalformedMesh = errors.New("malformed mesh")

// Mesh is a triangle list unrolled from indexed OBJ data: entry i of each
// slice belongs to the same corner, three corners per triangle
type Mesh struct {
	Vertices []mgl32.Vec4
	UVs      []mgl32.Vec2
	Normals  []mgl32.Vec3
}

// Triangles returns the triangle count
func (m *Mesh) Triangles() int {
	return len(m.Vertices) / 3
}

// Bounds returns the axis-aligned box around every vertex. An empty mesh has
// zero bounds.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0].Vec3(), m.Vertices[0].Vec3()
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < lo[i] {
				lo[i] = v[i]
			}
			if v[i] > hi[i] {
				hi[i] = v[i]
			}
		}
	}
	return lo, hi
}

// LoadMeshFile opens and parses a mesh file
func LoadMeshFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseMesh(f)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}
	return m, nil
}

// ParseMesh reads the OBJ subset used for wall and marker models: v, vt, vn
// and triangular f records with 1-based v/t/n corners. The texture and
// normal parts of a corner may be left out ("v", "v//n"); missing parts read
// as zero. Other record types are skipped.
func ParseMesh(r io.Reader) (*Mesh, error) {
	var (
		positions []mgl32.Vec3
		uvs       []mgl32.Vec2
		normals   []mgl32.Vec3
		mesh      Mesh
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			f, err := parseFloats(fields[1:], 3, line)
			if err != nil {
				return nil, err
			}
			positions = append(positions, mgl32.Vec3{f[0], f[1], f[2]})
		case "vt":
			f, err := parseFloats(fields[1:], 2, line)
			if err != nil {
				return nil, err
			}
			uvs = append(uvs, mgl32.Vec2{f[0], f[1]})
		case "vn":
			f, err := parseFloats(fields[1:], 3, line)
			if err != nil {
				return nil, err
			}
			normals = append(normals, mgl32.Vec3{f[0], f[1], f[2]})
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: face has %d corners, want 3", ErrMalformedMesh, line, len(fields)-1)
			}
			for _, corner := range fields[1:] {
				vi, ti, ni, err := parseCorner(corner, line)
				if err != nil {
					return nil, err
				}
				p, err := lookup(positions, vi, "vertex", line)
				if err != nil {
					return nil, err
				}
				mesh.Vertices = append(mesh.Vertices, p.Vec4(1))

				var uv mgl32.Vec2
				if ti != 0 {
					if uv, err = lookup(uvs, ti, "uv", line); err != nil {
						return nil, err
					}
				}
				mesh.UVs = append(mesh.UVs, uv)

				var n mgl32.Vec3
				if ni != 0 {
					if n, err = lookup(normals, ni, "normal", line); err != nil {
						return nil, err
					}
				}
				mesh.Normals = append(mesh.Normals, n)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}
	return &mesh, nil
}

func parseFloats(fields []string, want, line int) ([]float32, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("%w: line %d: want %d numbers, got %d", ErrMalformedMesh, line, want, len(fields))
	}
	out := make([]float32, want)
	for i := 0; i < want; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformedMesh, line, fields[i])
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseCorner splits "v/t/n"; absent texture or normal indices return 0
func parseCorner(s string, line int) (v, t, n int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: line %d: bad face corner %q", ErrMalformedMesh, line, s)
	}
	idx := [3]int{}
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return 0, 0, 0, fmt.Errorf("%w: line %d: face corner %q has no vertex", ErrMalformedMesh, line, s)
			}
			continue
		}
		x, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: line %d: bad face index %q", ErrMalformedMesh, line, p)
		}
		if x <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: line %d: face index %d, indices start at 1", ErrMalformedMesh, line, x)
		}
		idx[i] = x
	}
	return idx[0], idx[1], idx[2], nil
}

func lookup[T any](list []T, index int, kind string, line int) (T, error) {
	var zero T
	if index > len(list) {
		return zero, fmt.Errorf("%w: line %d: %s index %d of %d", ErrMalformedMesh, line, kind, index, len(list))
	}
	return list[index-1], nil
}
