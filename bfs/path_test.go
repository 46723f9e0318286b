package bfs_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/mazewave/bfs"
	"github.com/katalvlaran/mazewave/maze"
)

func TestReconstructPath_StartEqualsGoal(t *testing.T) {
	got := bfs.ReconstructPath(map[maze.Cell]maze.Cell{}, cell(1, 1), cell(1, 1))
	if want := []maze.Cell{cell(1, 1)}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReconstructPath(start==goal) = %v; want %v", got, want)
	}
}

func TestReconstructPath_Unreachable(t *testing.T) {
	parent := map[maze.Cell]maze.Cell{cell(1, 0): cell(0, 0)}
	if got := bfs.ReconstructPath(parent, cell(0, 0), cell(5, 5)); got != nil {
		t.Errorf("ReconstructPath(unreachable) = %v; want nil", got)
	}
}

func TestReconstructPath_OrderAndEndpoints(t *testing.T) {
	// Hand-built chain (0,0)→(1,0)→(1,1)→(2,1).
	parent := map[maze.Cell]maze.Cell{
		cell(1, 0): cell(0, 0),
		cell(1, 1): cell(1, 0),
		cell(2, 1): cell(1, 1),
	}
	got := bfs.ReconstructPath(parent, cell(0, 0), cell(2, 1))
	want := []maze.Cell{cell(0, 0), cell(1, 0), cell(1, 1), cell(2, 1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReconstructPath = %v; want %v", got, want)
	}
}

// TestReconstructPath_ValidMoves checks the path guarantees on a real
// search: no repeated cells, and every hop is one passable 4-step.
func TestReconstructPath_ValidMoves(t *testing.T) {
	g, err := maze.Generate(14, 0.25, 7)
	if err != nil {
		t.Fatal(err)
	}
	start, goal := cell(0, 0), cell(13, 13)
	if err = g.SetPassable(start.X, start.Y, true); err != nil {
		t.Fatal(err)
	}
	if err = g.SetPassable(goal.X, goal.Y, true); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.Run(g, start, goal)
	if err != nil {
		t.Fatal(err)
	}
	path := bfs.ReconstructPath(res.Parent, start, goal)
	if path == nil {
		if res.Reached(goal) {
			t.Fatal("goal reached but no path reconstructed")
		}
		t.Skip("goal unreachable for this seed; nothing to validate")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Errorf("path endpoints = %v … %v; want %v … %v", path[0], path[len(path)-1], start, goal)
	}
	seen := make(map[maze.Cell]bool, len(path))
	for i, c := range path {
		if seen[c] {
			t.Errorf("path repeats cell %v", c)
		}
		seen[c] = true
		if !g.Passable(c.X, c.Y) {
			t.Errorf("path crosses wall at %v", c)
		}
		if i > 0 {
			p := path[i-1]
			if dx, dy := c.X-p.X, c.Y-p.Y; dx*dx+dy*dy != 1 {
				t.Errorf("illegal move %v→%v", p, c)
			}
		}
	}
	if got := len(path) - 1; got != res.Depth[goal] {
		t.Errorf("path edges = %d; want Depth[goal] = %d", got, res.Depth[goal])
	}
}

func TestPathTo_AgreesWithReconstructPath(t *testing.T) {
	g := parseGrid(t, "...", "...", "...")
	start, goal := cell(0, 0), cell(2, 2)
	res, err := bfs.Run(g, start, goal)
	if err != nil {
		t.Fatal(err)
	}
	a := res.PathTo(goal)
	b := bfs.ReconstructPath(res.Parent, start, goal)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("PathTo = %v; ReconstructPath = %v", a, b)
	}
}
