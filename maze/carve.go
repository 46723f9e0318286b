package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Carve generates a "perfect" maze of width×height rooms: walls between
// adjacent rooms are knocked out at random until every room reaches every
// other, so all open cells in the result are mutually reachable by exactly
// one corridor route. Each wall removal merges two union-find components;
// carving stops when a single component remains.
//
// The result is projected onto a (2·width−1)×(2·height−1) cell Grid: rooms
// occupy even coordinates, removed walls become the open cells between
// them, and the remaining odd-coordinate cells stay walls.
//
// Deterministic per seed. Returns ErrGridSize when either dimension is
// not positive.
// Complexity: expected O(W·H·α(W·H)) time, O(W·H) memory.
func Carve(width, height int, seed int64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridSize, width, height)
	}
	rng := NewRand(seed)

	// One union-find element per room.
	rooms := make([][]*disjoint.Element, height)
	for y := range rooms {
		rooms[y] = make([]*disjoint.Element, width)
		for x := range rooms[y] {
			rooms[y][x] = disjoint.NewElement()
		}
	}

	// Cell lattice: rooms at even coordinates, walls everywhere else.
	cw, ch := 2*width-1, 2*height-1
	cells := make([][]bool, ch)
	for y := 0; y < ch; y++ {
		cells[y] = make([]bool, cw)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[2*y][2*x] = true
		}
	}

	// Knock out walls until a single connected component remains. By
	// symmetry we only ever connect to the right or down.
	for cc := width * height; cc > 1; {
		x0 := rng.Intn(width)
		y0 := rng.Intn(height)
		x1, y1 := x0, y0
		dir := rng.Intn(2)
		if dir == 0 && x0 < width-1 {
			x1++ // go right
		} else if dir == 1 && y0 < height-1 {
			y1++ // go down
		} else {
			continue // can't go in the desired direction
		}
		if rooms[y0][x0].Find() == rooms[y1][x1].Find() {
			continue // already connected
		}

		// Tear down the wall cell between the two rooms.
		if dir == 0 {
			cells[2*y0][2*x0+1] = true
		} else {
			cells[2*y0+1][2*x0] = true
		}
		disjoint.Union(rooms[y0][x0], rooms[y1][x1])
		cc--
	}

	return &Grid{Width: cw, Height: ch, cells: cells}, nil
}
