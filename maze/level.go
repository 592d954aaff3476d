package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedLevel marks a level description that cannot be parsed
var ErrMalformedLevel = errors.New("malformed level")

// token is one integer of a level description with its source line
type token struct {
	value int
	line  int
}

// LoadLevelFile opens and parses a level description file
func LoadLevelFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	defer f.Close()

	g, err := ParseLevel(f)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return g, nil
}

// ParseLevel reads a level description:
//
//	width height
//	startRow startCol goalRow goalCol
//	col row
//	col row
//	...
//
// Wall pairs list the column first. The start/goal line may be omitted only
// when no walls follow; start then defaults to (0,0) and goal to the far corner.
// '#' begins a comment that runs to the end of the line.
func ParseLevel(r io.Reader) (*Grid, error) {
	tokens, err := scanTokens(r)
	if err != nil {
		return nil, err
	}

	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: missing width and height", ErrMalformedLevel)
	}
	width, height := tokens[0].value, tokens[1].value
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLevel, tokens[0].line, err)
	}
	rest := tokens[2:]

	var start, goal Point
	switch {
	case len(rest) == 0:
		start = Point{0, 0}
		goal = Point{height - 1, width - 1}
	case len(rest) < 4:
		return nil, fmt.Errorf("%w: line %d: start/goal needs 4 integers, got %d", ErrMalformedLevel, rest[0].line, len(rest))
	default:
		start = Point{rest[0].value, rest[1].value}
		goal = Point{rest[2].value, rest[3].value}
		rest = rest[4:]
	}

	if start == goal {
		return nil, fmt.Errorf("%w: start and goal share cell (%d,%d)", ErrMalformedLevel, start.Row, start.Col)
	}
	if err := g.setStart(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := g.setGoal(goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	if len(rest)%2 != 0 {
		return nil, fmt.Errorf("%w: line %d: wall pair missing its row", ErrMalformedLevel, rest[len(rest)-1].line)
	}
	for i := 0; i < len(rest); i += 2 {
		p := Point{Row: rest[i+1].value, Col: rest[i].value}
		if c := g.CellAt(p); g.InBounds(p.Row, p.Col) && (c == Start || c == Goal) {
			return nil, fmt.Errorf("%w: line %d: wall on %s cell (%d,%d)", ErrMalformedLevel, rest[i].line, c, p.Row, p.Col)
		}
		if err := g.set(p, Wall); err != nil {
			return nil, fmt.Errorf("line %d: wall: %w", rest[i].line, err)
		}
	}

	return g, nil
}

func scanTokens(r io.Reader) ([]token, error) {
	var tokens []token
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		for _, field := range strings.Fields(text) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedLevel, line, field)
			}
			tokens = append(tokens, token{value: v, line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return tokens, nil
}

// EncodeLevel writes g in the format ParseLevel reads
func EncodeLevel(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.width, g.height)
	fmt.Fprintf(bw, "%d %d %d %d\n", g.start.Row, g.start.Col, g.goal.Row, g.goal.Col)
	g.Each(func(p Point, c Cell) {
		if c == Wall {
			fmt.Fprintf(bw, "%d %d\n", p.Col, p.Row)
		}
	})
	return bw.Flush()
}
