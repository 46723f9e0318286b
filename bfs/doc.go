// Package bfs provides layered breadth-first search over a maze.Grid,
// returning per-depth discovery layers, parent links, and shortest-path
// reconstruction.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from a start cell.
//   - Returns a Result containing:
//   - Layers: cells dequeued at each depth, in discovery order
//   - Depth:  map from cell → distance (edges) from start
//   - Parent: map from cell → the cell that first discovered it
//   - Terminates the instant the goal is dequeued; the final (possibly
//     partial) layer is kept. An unreachable goal exhausts the start's
//     connected component and stays absent from Depth and Parent.
//   - Supports functional hooks: OnEnqueue, OnDequeue, OnLayer.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(W·H) time.
//   - The layer index at which the goal is dequeued equals the true
//     shortest-path distance — the guarantee a random walk never gives.
//   - Layers drive wavefront pacing in an external renderer.
//
// Determinism
//
//	Neighbors are probed in the fixed order right, left, down, up
//	(maze.Grid.OpenNeighbors), so layer contents, parent assignment and
//	tie-breaking are fully reproducible.
//
// Complexity (W×H grid)
//
//   - Time:   O(W·H)  (each cell enqueued at most once, 4 probes per cell)
//   - Memory: O(W·H)  (queue, Depth map, Parent map, layers)
//
// Usage
//
//	res, err := bfs.Run(g, start, goal)
//	if err != nil {
//	    // ErrGridNil, ErrCellOutOfBounds, ErrCellBlocked, ErrOptionViolation,
//	    // a context error, or a wrapped OnLayer error
//	}
//	path := res.PathTo(goal) // nil when the goal was never reached
//
// Options
//
//   - WithContext(ctx):    cancel a long search.
//   - WithMaxDepth(d):     stop exploring beyond depth d (>0).
//   - WithOnEnqueue(fn):   hook when a cell is first discovered.
//   - WithOnDequeue(fn):   hook when a cell leaves the queue.
//   - WithOnLayer(fn):     hook after each completed layer; an error aborts.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrCellOutOfBounds    if start or goal lies outside the grid.
//   - ErrCellBlocked        if start or goal sits on a wall cell.
//   - ErrOptionViolation    if an invalid Option was supplied.
package bfs
