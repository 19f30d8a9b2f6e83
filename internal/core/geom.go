// Package core provides the host-independent types shared by the game and its
// platforms: geometry, the character screen buffer, input frames and step
// results. It imports no UI, audio or storage library so game logic stays pure
// and testable.
package core

import "math"

// Rect is an integer, top-left anchored rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Box is a centre-anchored rectangle in world units.
// The world is y-up: Top() is greater than Bottom().
type Box struct {
	CX, CY float64 // Centre
	W, H   float64 // Full width and height
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.W/2 }

// Top returns the y-coordinate of the upper edge.
func (b Box) Top() float64 { return b.CY + b.H/2 }

// Bottom returns the y-coordinate of the lower edge.
func (b Box) Bottom() float64 { return b.CY - b.H/2 }

// Viewport maps y-up world coordinates onto a y-down grid of cells.
type Viewport struct {
	WorldW, WorldH float64
	CellsW, CellsH int
}

// ScaleX returns how many cells one world unit spans horizontally.
func (v Viewport) ScaleX() float64 {
	if v.WorldW <= 0 {
		return 0
	}
	return float64(v.CellsW) / v.WorldW
}

// ScaleY returns how many cells one world unit spans vertically.
func (v Viewport) ScaleY() float64 {
	if v.WorldH <= 0 {
		return 0
	}
	return float64(v.CellsH) / v.WorldH
}

// Col converts a world x-coordinate to a column.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x * v.ScaleX()))
}

// Row converts a world y-coordinate to a row, flipping the axis.
func (v Viewport) Row(y float64) int {
	return int(math.Floor((v.WorldH - y) * v.ScaleY()))
}

// Project converts a world box into the cells it covers.
// A non-empty box always covers at least one cell.
func (v Viewport) Project(b Box) Rect {
	x0 := v.Col(b.Left())
	x1 := int(math.Ceil(b.Right() * v.ScaleX()))
	y0 := v.Row(b.Top())
	y1 := int(math.Ceil((v.WorldH - b.Bottom()) * v.ScaleY()))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
