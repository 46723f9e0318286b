package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazewave/maze"
)

// Sentinel errors for frame rendering.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Palette, loosely after the original scene: light open cells, grey walls,
// warm wavefront gradient, purple path, pale blue trail.
var (
	openColor   = color.RGBA{R: 236, G: 236, B: 236, A: 255}
	wallColor   = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	lineColor   = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	layerFrom   = color.RGBA{R: 255, G: 211, B: 0, A: 255} // yellow
	layerTo     = color.RGBA{R: 255, G: 122, B: 0, A: 255} // orange
	pathColor   = color.RGBA{R: 155, G: 89, B: 182, A: 255}
	trailColor  = color.RGBA{R: 153, G: 217, B: 255, A: 255}
	startColor  = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	goalColor   = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	borderColor = color.White
)

// Option configures Frame via functional arguments.
type Option func(*Options)

// Options holds frame-rendering parameters and overlays.
type Options struct {
	// CellPixels is the square tile edge for one grid cell.
	CellPixels int

	// BorderPixels, if > 0, adds a white border around the frame.
	BorderPixels int

	// Layers recolors cells on a yellow→orange gradient by layer index.
	Layers [][]maze.Cell

	// Path recolors cells purple; drawn above Layers and Trail.
	Path []maze.Cell

	// Trail recolors cells pale blue; drawn above Layers, below Path.
	Trail []maze.Cell

	// Start and Goal, when set, get arrow markers on top of everything.
	Start, Goal *maze.Cell

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with 16-pixel tiles, no border and no
// overlays.
func DefaultOptions() Options {
	return Options{CellPixels: 16}
}

// WithCellPixels sets the tile edge in pixels (must be positive).
func WithCellPixels(px int) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: CellPixels must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.CellPixels = px
	}
}

// WithBorder adds a white border of the given width around the frame.
func WithBorder(px int) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: BorderPixels cannot be negative (%d)", ErrOptionViolation, px)
			return
		}
		o.BorderPixels = px
	}
}

// WithLayers overlays BFS layers, colored by depth.
func WithLayers(layers [][]maze.Cell) Option {
	return func(o *Options) { o.Layers = layers }
}

// WithPath overlays the reconstructed shortest path.
func WithPath(path []maze.Cell) Option {
	return func(o *Options) { o.Path = path }
}

// WithTrail overlays a random-walk trail.
func WithTrail(trail []maze.Cell) Option {
	return func(o *Options) { o.Trail = trail }
}

// WithMarkers places start (green) and goal (red) arrow markers.
func WithMarkers(start, goal maze.Cell) Option {
	return func(o *Options) {
		s, g := start, goal
		o.Start, o.Goal = &s, &g
	}
}

// frame renders a grid plus overlay colors lazily, cell by cell, through
// the image.Image interface; rasterization happens once in ToRGBA.
type frame struct {
	grid   *maze.Grid
	colors map[maze.Cell]color.RGBA
	cellPx int
}

func (f *frame) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.grid.Width*f.cellPx, f.grid.Height*f.cellPx)
}

func (f *frame) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.grid.Width*f.cellPx || y >= f.grid.Height*f.cellPx {
		return color.Transparent
	}
	// 1-pixel grid line on each tile's top/left edge.
	if f.cellPx > 2 && (x%f.cellPx == 0 || y%f.cellPx == 0) {
		return lineColor
	}
	c := maze.Cell{X: x / f.cellPx, Y: y / f.cellPx}
	if over, ok := f.colors[c]; ok {
		return over
	}
	if f.grid.Passable(c.X, c.Y) {
		return openColor
	}
	return wallColor
}

// lerpColor blends a→b at t ∈ [0,1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// overlayColors flattens the configured overlays into one cell→color map.
// Precedence (low to high): layers, trail, path.
func overlayColors(o *Options) map[maze.Cell]color.RGBA {
	colors := make(map[maze.Cell]color.RGBA)
	total := len(o.Layers)
	for i, layer := range o.Layers {
		t := float64(i) / float64(max(total, 1))
		shade := lerpColor(layerFrom, layerTo, t)
		for _, c := range layer {
			colors[c] = shade
		}
	}
	for _, c := range o.Trail {
		colors[c] = trailColor
	}
	for _, c := range o.Path {
		colors[c] = pathColor
	}
	return colors
}

// Frame rasterizes g with the configured overlays into an RGBA image of
// (Width·CellPixels)×(Height·CellPixels) pixels, plus any border.
// Returns ErrGridNil or ErrOptionViolation on bad input.
func Frame(g *maze.Grid, opts ...Option) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f := &frame{grid: g, colors: overlayColors(&o), cellPx: o.CellPixels}
	composed := image_utils.NewCompositeImage()
	if err := composed.AddImage(f, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: composing base frame: %w", err)
	}
	if o.Start != nil {
		if err := addMarker(composed, *o.Start, startColor, o.CellPixels); err != nil {
			return nil, err
		}
	}
	if o.Goal != nil {
		if err := addMarker(composed, *o.Goal, goalColor, o.CellPixels); err != nil {
			return nil, err
		}
	}

	rgba := image_utils.ToRGBA(composed)
	if o.BorderPixels > 0 {
		rgba = image_utils.ToRGBA(image_utils.AddImageBorder(rgba, borderColor, o.BorderPixels))
	}
	return rgba, nil
}

// addMarker drops a tile-sized arrow onto the given cell.
func addMarker(composed *image_utils.CompositeImage, c maze.Cell, col color.RGBA, cellPx int) error {
	arrow := image_utils.ResizeImage(image_utils.DownArrow(col), cellPx, cellPx)
	if err := composed.AddImage(arrow, image.Pt(c.X*cellPx, c.Y*cellPx)); err != nil {
		return fmt.Errorf("render: placing marker at (%s): %w", c, err)
	}
	return nil
}

// SideBySide lays two frames out horizontally with a gap between them,
// left panel first. Panels may differ in size.
func SideBySide(left, right image.Image, gapPx int) (*image.RGBA, error) {
	if gapPx < 0 {
		return nil, fmt.Errorf("%w: gap cannot be negative (%d)", ErrOptionViolation, gapPx)
	}
	composed := image_utils.NewCompositeImage()
	if err := composed.AddImage(left, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: composing left panel: %w", err)
	}
	offset := left.Bounds().Dx() + gapPx
	if err := composed.AddImage(right, image.Pt(offset, 0)); err != nil {
		return nil, fmt.Errorf("render: composing right panel: %w", err)
	}
	return image_utils.ToRGBA(composed), nil
}

// WriteFile encodes img as PNG at path.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encoding %s: %w", path, err)
	}
	return nil
}
