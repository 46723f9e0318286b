package walk_test

import (
	"fmt"

	"github.com/katalvlaran/mazewave/maze"
	"github.com/katalvlaran/mazewave/walk"
)

// ExampleWalker shows forced movement along a corridor: with exactly one
// open neighbor at every position, the walk is deterministic regardless
// of seed.
func ExampleWalker() {
	g, _ := maze.NewGrid([][]bool{{true, true, true}})
	w, _ := walk.New(g, maze.Cell{X: 0, Y: 0}, 42)

	fmt.Println(w.Step()) // only (1,0) is open next to (0,0)

	// Output:
	// 1,0
}

// ExampleStep demonstrates the stuck case: a cell with zero open
// neighbors returns itself, a no-op.
func ExampleStep() {
	g, _ := maze.NewGrid([][]bool{{true}})
	next := walk.Step(g, maze.Cell{X: 0, Y: 0}, maze.NewRand(42))
	fmt.Println(next)

	// Output:
	// 0,0
}
