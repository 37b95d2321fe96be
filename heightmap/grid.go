package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Parse reads an elevation map from r.
// Lines are separated by '\n'; a trailing '\r' on each line is dropped and
// trailing blank lines are ignored. Exactly one 'S' and one 'E' are required.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errAt(-1, -1, ErrEmptyGrid)
	}
	// Trailing blanks are gone, so a blank first line means rows follow it.
	if len(lines[0]) == 0 {
		return nil, errAt(0, -1, ErrNonRectangular)
	}

	w := len(lines[0])
	heights := make([][]int, len(lines))
	start, end := -1, -1
	for row, line := range lines {
		if len(line) != w {
			return nil, errAt(row, -1, ErrNonRectangular)
		}
		heights[row] = make([]int, w)
		for col := 0; col < w; col++ {
			c := line[col]
			switch {
			case c == StartMarker:
				if start >= 0 {
					return nil, errAt(row, col, ErrDuplicateMarker)
				}
				start = row*w + col
				heights[row][col] = MinHeight
			case c == EndMarker:
				if end >= 0 {
					return nil, errAt(row, col, ErrDuplicateMarker)
				}
				end = row*w + col
				heights[row][col] = MaxHeight
			case c >= 'a' && c <= 'z':
				heights[row][col] = int(c - 'a')
			default:
				return nil, errAt(row, col, ErrInvalidElevation)
			}
		}
	}
	if start < 0 {
		return nil, errAt(-1, -1, ErrMissingStart)
	}
	if end < 0 {
		return nil, errAt(-1, -1, ErrMissingEnd)
	}

	return &Grid{
		Width:   w,
		Height:  len(heights),
		Heights: heights,
		Start:   start,
		End:     end,
	}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// New constructs a Grid from numeric heights, deep-copying the input.
// start and end are row-major indices; the cells they name keep whatever
// height the caller supplied.
// Complexity: O(W×H) time and memory.
func New(heights [][]int, start, end int) (*Grid, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, errAt(-1, -1, ErrEmptyGrid)
	}
	h, w := len(heights), len(heights[0])
	cells := make([][]int, h)
	for row := 0; row < h; row++ {
		if len(heights[row]) != w {
			return nil, errAt(row, -1, ErrNonRectangular)
		}
		for col, v := range heights[row] {
			if v < MinHeight || v > MaxHeight {
				return nil, errAt(row, col, ErrInvalidElevation)
			}
		}
		cells[row] = make([]int, w)
		copy(cells[row], heights[row])
	}
	if start < 0 || start >= w*h {
		return nil, errAt(-1, -1, ErrMissingStart)
	}
	if end < 0 || end >= w*h {
		return nil, errAt(-1, -1, ErrMissingEnd)
	}

	return &Grid{Width: w, Height: h, Heights: cells, Start: start, End: end}, nil
}

// Validate re-checks the invariants of a Grid assembled by hand.
func (g *Grid) Validate() error {
	if g.Height == 0 || g.Width == 0 || len(g.Heights) != g.Height {
		return errAt(-1, -1, ErrEmptyGrid)
	}
	if len(g.Heights[0]) != g.Width {
		return errAt(0, -1, ErrNonRectangular)
	}
	_, err := New(g.Heights, g.Start, g.End)

	return err
}

// Len returns the number of cells.
func (g *Grid) Len() int { return g.Width * g.Height }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Index maps (row, col) to a row-major index.
func (g *Grid) Index(row, col int) int { return row*g.Width + col }

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Width, idx % g.Width
}

// HeightAt returns the height stored at index idx.
func (g *Grid) HeightAt(idx int) int {
	row, col := g.Coordinate(idx)
	return g.Heights[row][col]
}

// Manhattan returns |Δrow| + |Δcol| between two cells, a lower bound on the
// number of orthogonal steps separating them.
func (g *Grid) Manhattan(a, b int) int {
	ar, ac := g.Coordinate(a)
	br, bc := g.Coordinate(b)
	return abs(ar-br) + abs(ac-bc)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// String renders the grid back to its textual form, with S and E in place.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			switch idx := g.Index(row, col); idx {
			case g.Start:
				sb.WriteByte(StartMarker)
			case g.End:
				sb.WriteByte(EndMarker)
			default:
				sb.WriteByte(byte('a' + g.Heights[row][col]))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
