package walk

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazewave/maze"
)

// Sentinel errors for walker construction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("walk: grid is nil")

	// ErrCellOutOfBounds is returned when the start cell lies outside the grid.
	ErrCellOutOfBounds = errors.New("walk: start cell out of bounds")

	// ErrCellBlocked is returned when the start cell sits on a wall.
	ErrCellBlocked = errors.New("walk: start cell is a wall")
)

// Step advances one random-walk step from cur: it enumerates the open
// 4-directional neighbors and picks one uniformly at random. When cur has
// no open neighbors the walker is stuck and cur is returned unchanged.
// A nil rng selects the fixed default stream (maze.NewRand(0)).
//
// Complexity: O(1).
func Step(g *maze.Grid, cur maze.Cell, rng *rand.Rand) maze.Cell {
	open := g.OpenNeighbors(cur)
	if len(open) == 0 {
		return cur
	}
	if rng == nil {
		rng = maze.NewRand(0)
	}
	return open[rng.Intn(len(open))]
}

// Walker is a random-walk token on a grid. It owns its RNG stream, so a
// walker created with the same (grid, start, seed) replays identically.
// Not safe for concurrent use.
type Walker struct {
	grid  *maze.Grid
	cur   maze.Cell
	rng   *rand.Rand
	steps int
	trail []maze.Cell
}

// New creates a Walker at start on g, drawing from a stream seeded with
// seed (seed 0 selects the fixed default stream).
// Returns ErrGridNil, ErrCellOutOfBounds or ErrCellBlocked on bad input.
func New(g *maze.Grid, start maze.Cell, seed int64) (*Walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: (%s) in %dx%d grid", ErrCellOutOfBounds, start, g.Width, g.Height)
	}
	if !g.Passable(start.X, start.Y) {
		return nil, fmt.Errorf("%w: (%s)", ErrCellBlocked, start)
	}
	return &Walker{
		grid:  g,
		cur:   start,
		rng:   maze.NewRand(seed),
		trail: []maze.Cell{start},
	}, nil
}

// Step advances the walker by one move and returns the new current cell.
// A stuck walker (no open neighbors) stays put; the no-op is not counted
// as a step and not appended to the trail.
func (w *Walker) Step() maze.Cell {
	next := Step(w.grid, w.cur, w.rng)
	if next == w.cur {
		return w.cur
	}
	w.cur = next
	w.steps++
	w.trail = append(w.trail, next)
	return next
}

// Cell returns the walker's current cell.
func (w *Walker) Cell() maze.Cell { return w.cur }

// Steps returns the number of moves taken so far (no-ops excluded).
func (w *Walker) Steps() int { return w.steps }

// Stuck reports whether the walker has no open neighbor to move to.
func (w *Walker) Stuck() bool {
	return len(w.grid.OpenNeighbors(w.cur)) == 0
}

// Trail returns a copy of every cell visited so far, start first. Revisits
// appear each time they happen; the trail is the drawable wander line.
func (w *Walker) Trail() []maze.Cell {
	out := make([]maze.Cell, len(w.trail))
	copy(out, w.trail)
	return out
}
