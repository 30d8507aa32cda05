// internal/canvas/surface.go
package canvas

import "image/color"

// Size is the logical resolution of a drawing surface in pixels.
type Size struct {
	W, H float64
}

// Point is a vertex of a stroked path.
type Point struct {
	X, Y float64
}

// Surface is the 2D drawing context supplied by the host. Only the render
// tick writes to it.
type Surface interface {
	// Begin re-establishes the logical size and clears the surface with bg.
	Begin(size Size, bg color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	// StrokePath strokes an open polyline through pts.
	StrokePath(pts []Point, width float64, clr color.Color)
	// FillText draws s centred on (x, y) with the given pixel size.
	FillText(s string, x, y, size float64, clr color.Color)
}
