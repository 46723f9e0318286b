// Package render rasterizes maze grids and search overlays into static
// PNG-ready frames.
//
// What
//
//   - Frame: draws a maze.Grid as a tile image — walls dark, open cells
//     light — with optional overlays: BFS layers on a warm yellow→orange
//     gradient by depth, the shortest path in purple, a walker trail in
//     light blue, and start/goal arrow markers.
//   - SideBySide: composes two frames into one comparison image (random
//     walk on the left, BFS on the right, in the classic arrangement).
//   - WriteFile: encodes any image as PNG.
//
// Why
//
//	The computational core is presentation-free; this package is the
//	concrete rendering collaborator that consumes its outputs. It produces
//	still frames only — animation timing, easing and camera work belong to
//	whatever plays the frames.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an invalid Option was supplied.
package render
