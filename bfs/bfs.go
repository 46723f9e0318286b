// Package bfs implements layered breadth-first search over a maze.Grid.
//
// The search explores the grid in discrete layers: layer 0 is {start},
// and layer k+1 holds every not-yet-discovered open neighbor of layer k,
// linked in Parent to whichever layer-k cell probed it first.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazewave/maze"
)

// item pairs a cell with its BFS depth.
type item struct {
	cell  maze.Cell
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	grid  *maze.Grid
	goal  maze.Cell
	opts  Options
	queue []item
	res   *Result
}

// Run performs layered BFS on g from start toward goal, applying any number
// of functional Options.
//
// Cells are marked discovered the instant they are enqueued, never when
// dequeued, so a cell cannot be enqueued twice within one layer. The search
// terminates the instant goal is dequeued; the layer being assembled at
// that moment is kept, truncated at the goal. If goal is unreachable, the
// search exhausts the start's connected component and goal stays absent
// from Result.Depth and Result.Parent.
//
// Returns ErrGridNil, ErrCellOutOfBounds or ErrCellBlocked for invalid
// input, ErrOptionViolation for bad options, a context error on
// cancellation, or a wrapped OnLayer error.
func Run(g *maze.Grid, start, goal maze.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Validate endpoints: inside the grid and not on a wall.
	for _, c := range [2]maze.Cell{start, goal} {
		if !g.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: (%s) in %dx%d grid", ErrCellOutOfBounds, c, g.Width, g.Height)
		}
		if !g.Passable(c.X, c.Y) {
			return nil, fmt.Errorf("%w: (%s)", ErrCellBlocked, c)
		}
	}

	n := g.Width * g.Height
	w := &walker{
		grid:  g,
		goal:  goal,
		opts:  o,
		queue: make([]item, 0, n),
		res: &Result{
			Depth:  make(map[maze.Cell]int, n),
			Parent: make(map[maze.Cell]maze.Cell, n),
		},
	}

	// Seed the queue with the start cell (depth 0, no parent).
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks c discovered at depth d, fires OnEnqueue, and appends it
// to the queue. Parent linkage is the caller's responsibility.
func (w *walker) enqueue(c maze.Cell, d int) {
	w.res.Depth[c] = d
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, item{cell: c, depth: d})
}

// dequeue pops the first item, fires OnDequeue, and returns it.
func (w *walker) dequeue() item {
	it := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(it.cell, it.depth)
	return it
}

// loop drains the queue one depth-layer at a time until the goal is
// dequeued, the component is exhausted, an error occurs, or the context
// is cancelled.
func (w *walker) loop() error {
	for depth := 0; len(w.queue) > 0; depth++ {
		// cancellation check (once per layer)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		width := len(w.queue)
		layer := make([]maze.Cell, 0, width)
		for i := 0; i < width; i++ {
			it := w.dequeue()
			layer = append(layer, it.cell)
			if it.cell == w.goal {
				// Found: keep the partial layer and stop immediately.
				w.res.Layers = append(w.res.Layers, layer)
				return w.emitLayer(depth, layer)
			}
			w.enqueueNeighbors(it)
		}
		w.res.Layers = append(w.res.Layers, layer)
		if err := w.emitLayer(depth, layer); err != nil {
			return err
		}
	}
	return nil
}

// emitLayer fires the OnLayer hook and wraps any error it returns.
func (w *walker) emitLayer(index int, layer []maze.Cell) error {
	if err := w.opts.OnLayer(index, layer); err != nil {
		return fmt.Errorf("bfs: OnLayer error at layer %d: %w", index, err)
	}
	return nil
}

// enqueueNeighbors probes the open neighbors of it.cell in the fixed
// right/left/down/up order and enqueues each unseen one, honoring MaxDepth.
func (w *walker) enqueueNeighbors(it item) {
	next := it.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.grid.OpenNeighbors(it.cell) {
		if _, seen := w.res.Depth[nb]; seen {
			continue
		}
		// First discovery wins; the entry is never overwritten.
		w.res.Parent[nb] = it.cell
		w.enqueue(nb, next)
	}
}
