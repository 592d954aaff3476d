package asset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/maze-walk/maze"
)

func TestParseMesh_DefaultWall(t *testing.T) {
	m, err := ParseMesh(strings.NewReader(DefaultWallMesh))
	if err != nil {
		t.Fatalf("ParseMesh: %v", err)
	}
	if m.Triangles() != 12 {
		t.Errorf("Expected 12 triangles, got %d", m.Triangles())
	}
	if len(m.Vertices) != 36 || len(m.UVs) != 36 || len(m.Normals) != 36 {
		t.Errorf("Expected 36 corners per stream, got %d/%d/%d", len(m.Vertices), len(m.UVs), len(m.Normals))
	}

	lo, hi := m.Bounds()
	if lo != (mgl32.Vec3{-1, -1, -1}) || hi != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected bounds [-1,1]^3, got %v..%v", lo, hi)
	}

	// Every corner's normal points away from the cube centre
	for i, v := range m.Vertices {
		if v.W() != 1 {
			t.Fatalf("Expected w=1 at corner %d, got %v", i, v.W())
		}
		if v.Vec3().Dot(m.Normals[i]) <= 0 {
			t.Errorf("Expected outward normal at corner %d, got v=%v n=%v", i, v, m.Normals[i])
		}
	}

	// Winding is counter-clockwise seen from outside
	for tri := 0; tri < m.Triangles(); tri++ {
		a, b, c := m.Vertices[tri*3].Vec3(), m.Vertices[tri*3+1].Vec3(), m.Vertices[tri*3+2].Vec3()
		face := b.Sub(a).Cross(c.Sub(a))
		if face.Dot(m.Normals[tri*3]) <= 0 {
			t.Errorf("Expected CCW winding on triangle %d", tri)
		}
	}
}

func TestParseMesh_PartialCorners(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1//1 2//1 3//1\nf 1 2 3\n"
	m, err := ParseMesh(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMesh: %v", err)
	}
	if m.Triangles() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", m.Triangles())
	}
	if m.Normals[0] != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected normal from v//n corner, got %v", m.Normals[0])
	}
	if m.Normals[3] != (mgl32.Vec3{}) || m.UVs[3] != (mgl32.Vec2{}) {
		t.Errorf("Expected zero normal and uv for bare corner, got %v %v", m.Normals[3], m.UVs[3])
	}
}

func TestParseMesh_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad number", "v 0 x 0\n"},
		{"short vertex", "v 0 0\n"},
		{"short uv", "vt 0\n"},
		{"missing corner", "v 0 0 0\nf 1 1\n"},
		{"quad", "v 0 0 0\nf 1 1 1 1\n"},
		{"zero index", "v 0 0 0\nf 0 1 1\n"},
		{"negative index", "v 0 0 0\nf -1 1 1\n"},
		{"vertex out of range", "v 0 0 0\nf 1 2 1\n"},
		{"uv out of range", "v 0 0 0\nf 1/1 1 1\n"},
		{"normal out of range", "v 0 0 0\nf 1//3 1 1\n"},
		{"empty vertex", "v 0 0 0\nf /1/1 1 1\n"},
		{"bad index", "v 0 0 0\nf a 1 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMesh(strings.NewReader(tt.src))
			if !errors.Is(err, ErrMalformedMesh) {
				t.Errorf("Expected ErrMalformedMesh, got %v", err)
			}
		})
	}
}

func TestParseMesh_SkipsUnknownRecords(t *testing.T) {
	src := "mtllib walls.mtl\no thing\ng group\nusemtl stone\nv 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 3\n"
	m, err := ParseMesh(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMesh: %v", err)
	}
	if m.Triangles() != 1 {
		t.Errorf("Expected 1 triangle, got %d", m.Triangles())
	}
}

func TestLoadMeshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.obj")
	if err := os.WriteFile(path, []byte(DefaultWallMesh), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMeshFile(path); err != nil {
		t.Errorf("Expected wall mesh to load, got %v", err)
	}
	if _, err := LoadMeshFile(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestEmptyMeshBounds(t *testing.T) {
	var m Mesh
	lo, hi := m.Bounds()
	if lo != (mgl32.Vec3{}) || hi != (mgl32.Vec3{}) {
		t.Errorf("Expected zero bounds, got %v..%v", lo, hi)
	}
}

func TestDefaultLevel(t *testing.T) {
	g, err := maze.ParseLevel(strings.NewReader(DefaultLevel))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if g.Width() != 9 || g.Height() != 7 {
		t.Errorf("Expected 9x7, got %dx%d", g.Width(), g.Height())
	}
	if g.Start() != (maze.Point{Row: 5, Col: 1}) || g.Goal() != (maze.Point{Row: 1, Col: 7}) {
		t.Errorf("Expected start (5,1) goal (1,7), got %v %v", g.Start(), g.Goal())
	}
	want := strings.Join([]string{
		"#########",
		"#.....#G#",
		"#.###.#.#",
		"#...#...#",
		"###.###.#",
		"#S......#",
		"#########",
	}, "\n") + "\n"
	if got := g.String(); got != want {
		t.Errorf("Expected layout\n%s\ngot\n%s", want, got)
	}
}
