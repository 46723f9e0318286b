// Package maze generates deterministic rectangular mazes and defines the
// Cell/Grid data model shared by the bfs, walk and render packages.
//
// What
//
//   - Cell: an (X,Y) grid coordinate, comparable and usable as a map key.
//   - Grid: an immutable w×h boolean lattice (true = passable, false = wall),
//     deep-copied on construction. SetPassable is the single sanctioned
//     post-generation mutation, used to force start and goal cells open.
//   - Generate: random-scatter maze — each cell independently passable with
//     probability 1−wallProb, drawn from a seeded source.
//   - Carve: perfect maze — walls knocked out at random (union-find) until
//     every room reaches every other, projected onto a cell grid.
//
// Why
//
//   - Reproducibility: the same (size, wallProb, seed) always yields an
//     identical Grid, so paired visualizations and tests line up exactly.
//   - Generate makes no connectivity promise (goal may be walled off);
//     Carve guarantees all open cells are mutually reachable.
//
// Determinism
//
//	All randomness flows through explicit seeds; seed 0 selects a fixed
//	default stream. No time-based sources anywhere.
//
// Complexity
//
//   - Generate: O(n²) time and memory.
//   - Carve:    O(W·H·α(W·H)) expected time, O(W·H) memory.
//
// Errors
//
//   - ErrGridSize          non-positive dimension.
//   - ErrWallProbability   wallProb outside [0,1].
//   - ErrEmptyGrid         NewGrid input has no rows or no columns.
//   - ErrNonRectangular    NewGrid input rows differ in length.
//   - ErrCellOutOfBounds   SetPassable target outside the grid.
package maze
