// This defines a basic executable producing the classic side-by-side
// comparison frame: a random walk wandering the maze on the left, the BFS
// wavefront and its shortest path on the right, both on the same grid.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/mazewave/bfs"
	"github.com/katalvlaran/mazewave/maze"
	"github.com/katalvlaran/mazewave/render"
	"github.com/katalvlaran/mazewave/walk"
)

// walkStream decorrelates the walker's RNG from the maze seed.
const walkStream = 1

func run() int {
	var size, cellPixels, walkSteps int
	var wallProb float64
	var randomSeed int64
	var carve bool
	var outFilename string
	flag.IntVar(&size, "size", 12,
		"The width and height of the maze, in grid cells (rooms when -carve is set).")
	flag.Float64Var(&wallProb, "wall_prob", 0.28,
		"The probability that a cell is a wall. Ignored when -carve is set.")
	flag.BoolVar(&carve, "carve", false,
		"If set, carves a fully connected maze instead of scattering walls.")
	flag.Int64Var(&randomSeed, "random_seed", 42,
		"The random seed; the same seed always reproduces the same frame.")
	flag.IntVar(&cellPixels, "cell_pixels", 16,
		"The edge length of one rendered grid cell, in pixels.")
	flag.IntVar(&walkSteps, "walk_steps", 0,
		"If positive, overrides the number of random-walk steps to replay. "+
			"By default the walker gets one step per BFS dequeue.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the comparison frame will be saved.")
	flag.Parse()
	if size < 1 || outFilename == "" {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	var g *maze.Grid
	var err error
	if carve {
		g, err = maze.Carve(size, size, randomSeed)
	} else {
		g, err = maze.Generate(size, wallProb, randomSeed)
	}
	if err != nil {
		fmt.Printf("Failed generating maze: %s\n", err)
		return 1
	}
	start := maze.Cell{X: 0, Y: 0}
	goal := maze.Cell{X: g.Width - 1, Y: g.Height - 1}
	for _, c := range []maze.Cell{start, goal} {
		if err = g.SetPassable(c.X, c.Y, true); err != nil {
			fmt.Printf("Failed opening endpoint %s: %s\n", c, err)
			return 1
		}
	}

	// BFS side: search and count dequeues so the walker can be replayed
	// on the same clock (one walk step per dequeue).
	dequeues := 0
	res, err := bfs.Run(g, start, goal,
		bfs.WithOnDequeue(func(maze.Cell, int) { dequeues++ }))
	if err != nil {
		fmt.Printf("Search failed: %s\n", err)
		return 1
	}
	path := res.PathTo(goal)
	if path == nil {
		fmt.Println("Goal unreachable for this seed; rendering the explored component only.")
	} else {
		fmt.Printf("BFS reached the goal in layer %d (%d cells dequeued).\n",
			res.Depth[goal], dequeues)
	}

	// Walk side: an independent seeded stream wandering the same maze.
	walker, err := walk.New(g, start, maze.DeriveRand(randomSeed, walkStream).Int63())
	if err != nil {
		fmt.Printf("Failed creating walker: %s\n", err)
		return 1
	}
	steps := dequeues
	if walkSteps > 0 {
		steps = walkSteps
	}
	reachedGoal := false
	for i := 0; i < steps && !walker.Stuck(); i++ {
		if walker.Step() == goal {
			reachedGoal = true
			break
		}
	}
	fmt.Printf("Random walk took %d steps and %s the goal.\n",
		walker.Steps(), map[bool]string{true: "reached", false: "never reached"}[reachedGoal])

	left, err := render.Frame(g,
		render.WithCellPixels(cellPixels),
		render.WithTrail(walker.Trail()),
		render.WithMarkers(start, goal),
	)
	if err != nil {
		fmt.Printf("Failed rendering walk panel: %s\n", err)
		return 1
	}
	right, err := render.Frame(g,
		render.WithCellPixels(cellPixels),
		render.WithLayers(res.Layers),
		render.WithPath(path),
		render.WithMarkers(start, goal),
	)
	if err != nil {
		fmt.Printf("Failed rendering BFS panel: %s\n", err)
		return 1
	}
	combined, err := render.SideBySide(left, right, cellPixels)
	if err != nil {
		fmt.Printf("Failed composing panels: %s\n", err)
		return 1
	}
	if err = render.WriteFile(outFilename, combined); err != nil {
		fmt.Printf("Failed writing image: %s\n", err)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
