// Package walk implements an unguided random walk over a maze.Grid.
//
// What
//
//   - Step: the stateless primitive — given a grid, a current cell and an
//     RNG, pick one open 4-directional neighbor uniformly at random, or
//     return the current cell unchanged when none exists (the walker is
//     stuck and the step is a no-op).
//   - Walker: the stateful token — current cell, an owned seeded RNG, a
//     step counter, and the visited trail, for replaying a walk alongside
//     a BFS on the same maze.
//
// Why
//
//	The walk is the control arm of the comparison: it models "no guarantee
//	of progress". It may revisit cells indefinitely and is never required
//	to reach any goal; no termination condition is intrinsic. An external
//	controller decides when to stop stepping (typically once the paired
//	BFS has found the goal).
//
// Determinism
//
//	A Walker draws from its own seeded stream, so the same
//	(grid, start, seed) replays the same trail. Pair several walkers on
//	one maze with maze.DeriveRand streams to keep them independent.
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrCellOutOfBounds   if the start cell lies outside the grid.
//   - ErrCellBlocked       if the start cell sits on a wall.
package walk
