package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewave/maze"
)

func TestGenerate_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		g, err := maze.Generate(n, 0.3, 42)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, maze.ErrGridSize)
	}
}

func TestGenerate_InvalidWallProbability(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, 2} {
		g, err := maze.Generate(8, p, 42)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, maze.ErrWallProbability)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g1, err := maze.Generate(12, 0.28, 42)
	require.NoError(t, err)
	g2, err := maze.Generate(12, 0.28, 42)
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2), "same (n, wallProb, seed) must reproduce the grid")

	g3, err := maze.Generate(12, 0.28, 43)
	require.NoError(t, err)
	assert.False(t, g1.Equal(g3), "different seeds should not collide on a 12x12 grid")
}

func TestGenerate_ProbabilityExtremes(t *testing.T) {
	walls, err := maze.Generate(16, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, walls.OpenCount())

	open, err := maze.Generate(16, 0, 42)
	require.NoError(t, err)
	assert.Equal(t, 16*16, open.OpenCount())
}

func TestNewGrid_Validation(t *testing.T) {
	_, err := maze.NewGrid(nil)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	_, err = maze.NewGrid([][]bool{})
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	_, err = maze.NewGrid([][]bool{{true, true}, {true}})
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
}

func TestNewGrid_DeepCopies(t *testing.T) {
	rows := [][]bool{{true, true}, {true, true}}
	g, err := maze.NewGrid(rows)
	require.NoError(t, err)
	rows[0][0] = false
	assert.True(t, g.Passable(0, 0), "mutating the input slice must not leak into the grid")
}

func TestGrid_SetPassable(t *testing.T) {
	g, err := maze.NewGrid([][]bool{{false, false}, {false, false}})
	require.NoError(t, err)

	require.NoError(t, g.SetPassable(1, 0, true))
	assert.True(t, g.Passable(1, 0))
	require.NoError(t, g.SetPassable(1, 0, false))
	assert.False(t, g.Passable(1, 0))

	err = g.SetPassable(2, 0, true)
	assert.ErrorIs(t, err, maze.ErrCellOutOfBounds)
	err = g.SetPassable(0, -1, true)
	assert.ErrorIs(t, err, maze.ErrCellOutOfBounds)
}

func TestGrid_PassableOutOfBounds(t *testing.T) {
	g, err := maze.NewGrid([][]bool{{true}})
	require.NoError(t, err)
	assert.False(t, g.Passable(-1, 0))
	assert.False(t, g.Passable(0, 1))
}

// TestGrid_OpenNeighborsOrder pins the fixed probe order: right, left, down, up.
func TestGrid_OpenNeighborsOrder(t *testing.T) {
	g, err := maze.NewGrid([][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	})
	require.NoError(t, err)

	got := g.OpenNeighbors(maze.Cell{X: 1, Y: 1})
	want := []maze.Cell{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0}}
	assert.Equal(t, want, got)

	// Corner cell: only right and down survive the bounds check.
	got = g.OpenNeighbors(maze.Cell{X: 0, Y: 0})
	want = []maze.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}
	assert.Equal(t, want, got)
}

func TestGrid_OpenNeighborsSkipsWalls(t *testing.T) {
	g, err := maze.NewGrid([][]bool{
		{true, false},
		{true, true},
	})
	require.NoError(t, err)
	got := g.OpenNeighbors(maze.Cell{X: 0, Y: 0})
	assert.Equal(t, []maze.Cell{{X: 0, Y: 1}}, got)
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "3,7", maze.Cell{X: 3, Y: 7}.String())
}

func TestCarve_InvalidSize(t *testing.T) {
	_, err := maze.Carve(0, 5, 42)
	assert.ErrorIs(t, err, maze.ErrGridSize)
	_, err = maze.Carve(5, -1, 42)
	assert.ErrorIs(t, err, maze.ErrGridSize)
}

func TestCarve_Deterministic(t *testing.T) {
	g1, err := maze.Carve(10, 8, 42)
	require.NoError(t, err)
	g2, err := maze.Carve(10, 8, 42)
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))
}

// TestCarve_SpanningTree checks the structural invariant of a perfect maze:
// rooms + exactly (rooms−1) removed walls are open, and every open cell is
// reachable from the top-left room.
func TestCarve_SpanningTree(t *testing.T) {
	const w, h = 9, 7
	g, err := maze.Carve(w, h, 42)
	require.NoError(t, err)
	assert.Equal(t, 2*w-1, g.Width)
	assert.Equal(t, 2*h-1, g.Height)
	assert.Equal(t, w*h+(w*h-1), g.OpenCount())

	// Flood fill from the top-left room.
	seen := map[maze.Cell]bool{{X: 0, Y: 0}: true}
	queue := []maze.Cell{{X: 0, Y: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.OpenNeighbors(cur) {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	assert.Equal(t, g.OpenCount(), len(seen), "all open cells must be mutually reachable")
}

func TestCarve_SingleRoom(t *testing.T) {
	g, err := maze.Carve(1, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Width)
	assert.Equal(t, 1, g.Height)
	assert.True(t, g.Passable(0, 0))
}

func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	a, b := maze.NewRand(0), maze.NewRand(1)
	for i := 0; i < 8; i++ {
		assert.Equal(t, b.Int63(), a.Int63(), "seed 0 must select the fixed default stream")
	}
}

func TestDeriveRand_Streams(t *testing.T) {
	// Same (parent, stream) reproduces; distinct streams diverge.
	a1, a2 := maze.DeriveRand(42, 3), maze.DeriveRand(42, 3)
	assert.Equal(t, a1.Int63(), a2.Int63())

	b := maze.DeriveRand(42, 4)
	c := maze.DeriveRand(42, 3)
	assert.NotEqual(t, b.Int63(), c.Int63())
}
