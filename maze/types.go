// Package maze defines the Cell/Grid types and sentinel errors shared by
// every other package in the module.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrGridSize is returned when a requested dimension is not positive.
	ErrGridSize = errors.New("maze: grid size must be positive")

	// ErrWallProbability is returned when wallProb lies outside [0,1].
	ErrWallProbability = errors.New("maze: wall probability must be in [0,1]")

	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrCellOutOfBounds indicates a coordinate outside the grid.
	ErrCellOutOfBounds = errors.New("maze: cell out of bounds")
)

// Cell is a single grid coordinate. The zero value is the top-left cell.
// Cell is comparable, so it serves directly as a map key.
type Cell struct {
	X, Y int
}

// String renders the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// neighborOffsets is the fixed 4-directional probe order: right, left,
// down, up. Every traversal in the module uses this order, which makes
// BFS tie-breaking and walk replays reproducible.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rectangular lattice of passable/wall cells, indexed by (x, y)
// with 0 ≤ x < Width and 0 ≤ y < Height. It is immutable after construction
// except through SetPassable.
type Grid struct {
	Width, Height int
	cells         [][]bool // cells[y][x]; true = passable
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice,
// deep-copying the input so later caller mutations cannot leak in.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(W×H) time and memory.
func NewGrid(passable [][]bool) (*Grid, error) {
	if len(passable) == 0 || len(passable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(passable), len(passable[0])
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		if len(passable[y]) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]bool, w)
		copy(cells[y], passable[y])
	}
	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
// Complexity: O(1).
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x]
}

// SetPassable marks (x,y) open or walled. This is the one sanctioned
// post-generation mutation: callers force the start and goal cells open
// before searching. Returns ErrCellOutOfBounds for coordinates outside
// the grid.
func (g *Grid) SetPassable(x, y int, open bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrCellOutOfBounds, x, y, g.Width, g.Height)
	}
	g.cells[y][x] = open
	return nil
}

// OpenNeighbors returns the passable 4-directional neighbors of c in the
// fixed probe order (right, left, down, up). The result is freshly
// allocated on each call.
// Complexity: O(1).
func (g *Grid) OpenNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if g.Passable(nx, ny) {
			out = append(out, Cell{X: nx, Y: ny})
		}
	}
	return out
}

// OpenCount returns the number of passable cells.
// Complexity: O(W×H).
func (g *Grid) OpenCount() int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] {
				n++
			}
		}
	}
	return n
}

// Equal reports whether g and other have identical dimensions and
// cell-for-cell passability.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}
