package main

import (
	"math"

	"elbow/route"
)

// SnapToEdge moves p onto the nearest rect side closer than maxDist and gives
// it that side's outward angle. Sides are tried left, right, top, bottom for
// each rect in turn; on a tie the earlier side keeps the snap.
func SnapToEdge(p route.Point, rects []route.Rect, maxDist float64) (route.ConnectionPoint, bool) {
	minDist := math.Inf(1)
	var snapped route.ConnectionPoint
	found := false

	try := func(dist float64, x, y, angle float64) {
		if dist < minDist && dist < maxDist {
			minDist = dist
			snapped = route.ConnectionPoint{Point: route.Point{X: x, Y: y}, Angle: angle}
			found = true
		}
	}

	for _, r := range rects {
		left, right := r.Left(), r.Right()
		top, bottom := r.Top(), r.Bottom()

		if p.Y >= top && p.Y <= bottom {
			y := clamp(p.Y, top, bottom)
			try(math.Abs(p.X-left), left, y, 180)
			try(math.Abs(p.X-right), right, y, 0)
		}
		if p.X >= left && p.X <= right {
			x := clamp(p.X, left, right)
			try(math.Abs(p.Y-top), x, top, 270)
			try(math.Abs(p.Y-bottom), x, bottom, 90)
		}
	}

	return snapped, found
}

// Snap snaps every connection point against all rects in the scene. Points
// with no side in reach keep their position and angle. It reports how many
// points were snapped.
func (s *Scene) Snap(maxDist float64) int {
	snapped := 0
	for i, cp := range s.Points {
		if next, ok := SnapToEdge(cp.Point, s.Rects, maxDist); ok {
			s.Points[i] = next
			snapped++
		}
	}
	return snapped
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
