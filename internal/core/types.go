package core

import "time"

// Size describes the dimensions of a grid or surface.
type Size struct {
	W int
	H int
}

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned region given by its origin and size in pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p lies inside r. Both edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Local translates a client-space point into r's coordinate space.
func (r Rect) Local(clientX, clientY float64) Point {
	return Point{X: clientX - r.X, Y: clientY - r.Y}
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
