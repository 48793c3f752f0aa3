// Package layout maps board grid coordinates to window pixel space.
//
// All functions are pure: the same window and coordinate always yield the
// same result. Positions are expressed in a center-origin, y-up frame whose
// origin is the middle of the window; ToScreen converts them to the
// top-left, y-down frame Ebitengine draws in.
package layout

import (
	"errors"
	"fmt"
)

// Grid dimensions in cells.
const (
	Columns = 8
	Rows    = 8
)

const (
	// gap shrinks every cell so neighbours do not touch.
	gap = 0.9

	marginX   = 0.05
	marginY   = 0.1
	compressX = 0.02
	compressY = 0.02
)

// ErrNoWindow is returned when the primary window has no usable size.
var ErrNoWindow = errors.New("layout: no primary window")

// Window is the primary window size in logical pixels.
type Window struct {
	Width  float64
	Height float64
}

// Point is a position in the center-origin frame.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in screen space (top-left origin).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Check reports ErrNoWindow if w cannot be laid out.
func Check(w Window) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrNoWindow, w.Width, w.Height)
	}
	return nil
}

// Side returns the side of the square the board is constrained to.
func Side(w Window) float64 {
	return min(w.Width, w.Height)
}

// CellSize returns the pixel size of a cell with the given size factor.
// Both axes use the square side so cells stay square.
func CellSize(factor float64, w Window) Size {
	s := Side(w)
	return Size{
		Width:  (factor / Columns * s) * gap,
		Height: (factor / Rows * s) * gap,
	}
}

// CellCenter returns the center of cell (x, y).
func CellCenter(x, y int, w Window) Point {
	s := Side(w)
	return Point{
		X: marginX*w.Width + (convert(float64(x), s, Columns) - float64(x)*compressX*w.Width),
		Y: marginY*w.Height + (convert(float64(y), s, Rows) - float64(y)*compressY*w.Height),
	}
}

// convert centers grid position pos on an axis of the given extent.
func convert(pos, extent, cells float64) float64 {
	tile := extent / cells
	return pos/cells*extent - extent/2 + tile/2
}

// ToScreen converts a center-origin center and size into the screen-space
// rectangle it covers in window w.
func ToScreen(c Point, sz Size, w Window) Rect {
	return Rect{
		X:      w.Width/2 + c.X - sz.Width/2,
		Y:      w.Height/2 - c.Y - sz.Height/2,
		Width:  sz.Width,
		Height: sz.Height,
	}
}

// Tracker remembers the last window laid out.
type Tracker struct {
	last  Window
	valid bool
}

// Changed reports whether w differs from the window seen by the previous
// call and records w.
func (t *Tracker) Changed(w Window) bool {
	if t.valid && t.last == w {
		return false
	}
	t.last = w
	t.valid = true
	return true
}

// Reset forces the next Changed call to report true.
func (t *Tracker) Reset() {
	t.valid = false
}
