// Package route validates connection points on axis-aligned rectangles and
// builds the elbow polyline that joins them.
package route

import "math"

const degToRad = math.Pi / 180

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Rect is centered on Position. Zero sizes are allowed and degenerate to a
// line or a point.
type Rect struct {
	Position Point `json:"position" yaml:"position"`
	Size     Size  `json:"size" yaml:"size"`
}

func (r Rect) Left() float64   { return r.Position.X - r.Size.Width/2 }
func (r Rect) Right() float64  { return r.Position.X + r.Size.Width/2 }
func (r Rect) Top() float64    { return r.Position.Y - r.Size.Height/2 }
func (r Rect) Bottom() float64 { return r.Position.Y + r.Size.Height/2 }

// ConnectionPoint is a point on a rectangle boundary plus the direction, in
// degrees, a connector must leave in. 0 is +x and angles grow toward +y.
type ConnectionPoint struct {
	Point Point   `json:"point" yaml:"point"`
	Angle float64 `json:"angle" yaml:"angle"`
}

// Direction returns the unit vector for the connection angle.
func (cp ConnectionPoint) Direction() Point {
	rad := cp.Angle * degToRad
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Route is the polyline from the first connection point to the second. A
// route returned by Build always has four or five points.
type Route []Point

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
