// Package bfs provides tunable options, error definitions and the Result
// type for layered breadth-first search over a maze.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewave/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrCellOutOfBounds is returned when start or goal lies outside the grid.
	ErrCellOutOfBounds = errors.New("bfs: cell out of bounds")

	// ErrCellBlocked is returned when start or goal sits on a wall cell.
	ErrCellBlocked = errors.New("bfs: cell is a wall")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Run behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is first discovered and enqueued.
	OnEnqueue func(c maze.Cell, depth int)

	// OnDequeue is called when a cell leaves the queue, before its
	// neighbors are probed.
	OnDequeue func(c maze.Cell, depth int)

	// OnLayer is called after each layer is completed (including the
	// partial final layer when the goal is found). If it returns an
	// error, the search aborts and propagates that error.
	OnLayer func(index int, layer []maze.Cell) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Cell, int) {},
		OnDequeue: func(maze.Cell, int) {},
		OnLayer:   func(int, []maze.Cell) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a cell is discovered.
func WithOnEnqueue(fn func(c maze.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell leaves the queue.
func WithOnDequeue(fn func(c maze.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnLayer registers a callback to run after each completed layer;
// returning an error from this callback stops the search.
func WithOnLayer(fn func(index int, layer []maze.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a layered search:
//   - Layers: cells dequeued at each depth, in discovery order. The final
//     layer is truncated at the goal when the goal was reached.
//   - Depth:  map from cell to its distance (in edges) from the start.
//     A cell appears here the moment it is enqueued, so Depth doubles as
//     the visited set of the finished search. The start maps to 0.
//   - Parent: map from cell to the cell that first discovered it. The
//     start has no entry; entries are never overwritten, which is what
//     guarantees shortest-path parentage.
type Result struct {
	Layers [][]maze.Cell
	Depth  map[maze.Cell]int
	Parent map[maze.Cell]maze.Cell
}

// Reached reports whether c was discovered by the search.
func (r *Result) Reached(c maze.Cell) bool {
	_, ok := r.Depth[c]
	return ok
}
