package route

import "math"

const (
	// DefaultTolerance is the absolute tolerance for every float comparison.
	DefaultTolerance = 1e-6
	// StubLength is how far a route travels straight out of a rectangle
	// before it bends.
	StubLength = 10.0
)

// Builder validates connection points and builds routes. The zero value is
// not usable; use New. A Builder is immutable and safe for concurrent use.
type Builder struct {
	tolerance float64
}

type Option func(*Builder)

// WithTolerance sets the comparison tolerance. Non-positive, NaN and infinite
// values are ignored.
func WithTolerance(eps float64) Option {
	return func(b *Builder) {
		if eps > 0 && !math.IsInf(eps, 0) {
			b.tolerance = eps
		}
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Tolerance() float64 {
	return b.tolerance
}

var defaultBuilder = New()

// Build validates both connection points against their rectangles and
// returns the elbow route between them using DefaultTolerance.
func Build(rect1, rect2 Rect, cp1, cp2 ConnectionPoint) (Route, error) {
	return defaultBuilder.Build(rect1, rect2, cp1, cp2)
}

// Build checks, in order, point 1 on rect1, point 2 on rect2, angle 1 and
// angle 2, and reports only the first failure.
func (b *Builder) Build(rect1, rect2 Rect, cp1, cp2 ConnectionPoint) (Route, error) {
	if err := b.Validate(rect1, rect2, cp1, cp2); err != nil {
		return nil, err
	}

	start := ExitPoint(cp1)
	end := ExitPoint(cp2)

	points := make(Route, 0, 5)
	points = append(points, cp1.Point, start)

	if nearlyEqual(start.X, end.X, b.tolerance) || nearlyEqual(start.Y, end.Y, b.tolerance) {
		points = append(points, end)
	} else {
		// Always horizontal from start first, then vertical into end.
		mid1 := Point{X: end.X, Y: start.Y}
		mid2 := Point{X: end.X, Y: end.Y}
		points = append(points, mid1, mid2)
	}

	points = append(points, cp2.Point)
	return points, nil
}

func (b *Builder) Validate(rect1, rect2 Rect, cp1, cp2 ConnectionPoint) error {
	if !b.OnEdge(cp1.Point, rect1) {
		return &PointError{Side: 1, Point: cp1.Point, Rect: rect1}
	}
	if !b.OnEdge(cp2.Point, rect2) {
		return &PointError{Side: 2, Point: cp2.Point, Rect: rect2}
	}
	if !b.OutwardPerpendicular(cp1.Point, cp1.Angle, rect1) {
		return &AngleError{Side: 1, Point: cp1.Point, Angle: cp1.Angle}
	}
	if !b.OutwardPerpendicular(cp2.Point, cp2.Angle, rect2) {
		return &AngleError{Side: 2, Point: cp2.Point, Angle: cp2.Angle}
	}
	return nil
}

// OnEdge reports whether p lies on one of the rectangle's four sides. Only the
// coordinate across the side is compared with tolerance; the span check along
// the side is exact and inclusive.
func (b *Builder) OnEdge(p Point, r Rect) bool {
	left, right := r.Left(), r.Right()
	top, bottom := r.Top(), r.Bottom()
	eps := b.tolerance

	onVertical := (nearlyEqual(p.X, left, eps) || nearlyEqual(p.X, right, eps)) &&
		p.Y >= top && p.Y <= bottom
	onHorizontal := (nearlyEqual(p.Y, top, eps) || nearlyEqual(p.Y, bottom, eps)) &&
		p.X >= left && p.X <= right

	return onVertical || onHorizontal
}

// OutwardPerpendicular reports whether angle (degrees) leaves the rectangle
// at p perpendicular to the side p sits on. At a corner the vertical side
// wins, so only a horizontal outward angle is accepted there.
func (b *Builder) OutwardPerpendicular(p Point, angle float64, r Rect) bool {
	dir := ConnectionPoint{Point: p, Angle: angle}.Direction()
	dx := p.X - r.Position.X
	dy := p.Y - r.Position.Y
	halfW := r.Size.Width / 2
	halfH := r.Size.Height / 2
	eps := b.tolerance

	if nearlyEqual(math.Abs(dx), halfW, eps) {
		return dx*dir.X > 0 && nearlyEqual(dir.Y, 0, eps)
	} else if nearlyEqual(math.Abs(dy), halfH, eps) {
		return dy*dir.Y > 0 && nearlyEqual(dir.X, 0, eps)
	}
	return false
}

// ExitPoint is the end of the straight stub that leaves cp along its angle.
func ExitPoint(cp ConnectionPoint) Point {
	dir := cp.Direction()
	return Point{
		X: cp.Point.X + dir.X*StubLength,
		Y: cp.Point.Y + dir.Y*StubLength,
	}
}

// OnEdge is Builder.OnEdge with DefaultTolerance.
func OnEdge(p Point, r Rect) bool { return defaultBuilder.OnEdge(p, r) }

// OutwardPerpendicular is Builder.OutwardPerpendicular with DefaultTolerance.
func OutwardPerpendicular(p Point, angle float64, r Rect) bool {
	return defaultBuilder.OutwardPerpendicular(p, angle, r)
}
