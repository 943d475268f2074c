package route

import (
	"errors"
	"fmt"
)

var (
	ErrPointNotOnEdge               = errors.New("connection point is not on the rectangle edge")
	ErrAngleNotOutwardPerpendicular = errors.New("angle is not perpendicular to the edge or does not point outward")
)

// PointError reports a connection point that failed the edge test.
// Side is 1 or 2.
type PointError struct {
	Side  int
	Point Point
	Rect  Rect
}

func (e *PointError) Error() string {
	return fmt.Sprintf("connection point %d (%g,%g) is not on the edge of rectangle %d", e.Side, e.Point.X, e.Point.Y, e.Side)
}

func (e *PointError) Unwrap() error { return ErrPointNotOnEdge }

// AngleError reports a connection angle that failed the outward test.
type AngleError struct {
	Side  int
	Point Point
	Angle float64
}

func (e *AngleError) Error() string {
	return fmt.Sprintf("angle %d (%g°) is not perpendicular to the edge or does not point outward", e.Side, e.Angle)
}

func (e *AngleError) Unwrap() error { return ErrAngleNotOutwardPerpendicular }
