package maze

import "fmt"

// Generate produces an n×n Grid in which every cell is independently
// passable with probability 1−wallProb, drawn from a source seeded with
// seed. The same (n, wallProb, seed) always yields an identical Grid.
//
// Generate makes no connectivity guarantee: any two cells may be mutually
// unreachable, and callers wanting fixed start/goal cells must force them
// open afterwards with SetPassable. Use Carve when a fully connected maze
// is required.
//
// Returns ErrGridSize when n ≤ 0 and ErrWallProbability when wallProb lies
// outside [0,1].
// Complexity: O(n²) time and memory.
func Generate(n int, wallProb float64, seed int64) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, n)
	}
	if wallProb < 0 || wallProb > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrWallProbability, wallProb)
	}
	rng := NewRand(seed)
	cells := make([][]bool, n)
	for y := 0; y < n; y++ {
		cells[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			cells[y][x] = rng.Float64() > wallProb
		}
	}
	return &Grid{Width: n, Height: n, cells: cells}, nil
}
