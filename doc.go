// Package mazewave is a small, deterministic toolkit for comparing
// breadth-first search against an unguided random walk on a shared maze.
//
// What's inside?
//
//	A pure-Go computational core plus a static frame renderer:
//		• maze/   — seeded maze generation (random scatter or carved perfect maze)
//		• bfs/    — layered breadth-first search with parent links & path reconstruction
//		• walk/   — an unguided random walker over the same grid
//		• render/ — PNG snapshots of grids, BFS wavefronts, paths and walk trails
//
// Why mazewave?
//
//   - Deterministic – every random draw comes from an explicit seed
//   - Minimal API – four operations cover the whole pipeline
//   - Hook-friendly – OnEnqueue/OnDequeue/OnLayer callbacks for custom pacing
//   - Pure algorithms – rendering is a separate, optional layer
//
// Quick pipeline:
//
//	g, _ := maze.Generate(12, 0.28, 42)
//	g.SetPassable(start.X, start.Y, true)
//	g.SetPassable(goal.X, goal.Y, true)
//	res, _ := bfs.Run(g, start, goal)
//	path := res.PathTo(goal)
//
// The layer index at which BFS dequeues the goal equals the shortest-path
// distance in edges — the property the random walker, by design, never
// guarantees.
package mazewave
