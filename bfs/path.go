package bfs

import "github.com/katalvlaran/mazewave/maze"

// ReconstructPath rebuilds the start→goal path from BFS parent links.
// Returns nil when goal was never discovered (absent from parent and not
// the start itself); otherwise the path begins with start, ends with goal,
// and each consecutive pair is one 4-directional move. The path length in
// edges equals the BFS depth at which goal was dequeued.
//
// Complexity: O(L) where L is the path length.
func ReconstructPath(parent map[maze.Cell]maze.Cell, start, goal maze.Cell) []maze.Cell {
	if goal != start {
		if _, ok := parent[goal]; !ok {
			return nil
		}
	}
	// Walk backward from goal, then reverse in place.
	path := make([]maze.Cell, 0, len(parent)+1)
	cur := goal
	for cur != start {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			// Broken chain: treat as unreachable rather than looping.
			return nil
		}
		cur = prev
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathTo reconstructs the path from the search's start cell to dest by
// walking Parent back to the root. Returns nil if dest was never reached.
func (r *Result) PathTo(dest maze.Cell) []maze.Cell {
	if !r.Reached(dest) {
		return nil
	}
	path := []maze.Cell{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break // reached the root
		}
		cur = prev
	}
	// reverse to read start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
