package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"elbow/route"

	"gopkg.in/yaml.v3"
)

var (
	ErrSceneShape = errors.New("scene needs exactly two rects and two points")
	ErrSceneValue = errors.New("scene coordinates, sizes and angles must be finite")
)

// Scene is the caller-side input: two rectangles and one connection point on
// each, paired by index.
type Scene struct {
	Rects  []route.Rect            `json:"rects" yaml:"rects"`
	Points []route.ConnectionPoint `json:"points" yaml:"points"`
}

// Result holds the outcome of running the core on a scene. Exactly one of
// Route and Err is set.
type Result struct {
	Route route.Route
	Err   error
}

func DefaultScene() *Scene {
	return &Scene{
		Rects: []route.Rect{
			{Position: route.Point{X: 100, Y: 100}, Size: route.Size{Width: 80, Height: 40}},
			{Position: route.Point{X: 300, Y: 200}, Size: route.Size{Width: 100, Height: 60}},
		},
		Points: []route.ConnectionPoint{
			{Point: route.Point{X: 140, Y: 100}, Angle: 0},
			{Point: route.Point{X: 250, Y: 200}, Angle: 180},
		},
	}
}

func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadScene(filename string) (*Scene, error) {
	if filename == "" {
		return DefaultScene(), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

func (s *Scene) check() error {
	if len(s.Rects) != 2 || len(s.Points) != 2 {
		return fmt.Errorf("%w (got %d rects, %d points)", ErrSceneShape, len(s.Rects), len(s.Points))
	}
	for i, r := range s.Rects {
		if !finite(r.Position.X, r.Position.Y, r.Size.Width, r.Size.Height) {
			return fmt.Errorf("%w (rect %d)", ErrSceneValue, i+1)
		}
	}
	for i, cp := range s.Points {
		if !finite(cp.Point.X, cp.Point.Y, cp.Angle) {
			return fmt.Errorf("%w (point %d)", ErrSceneValue, i+1)
		}
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s *Scene) Route(b *route.Builder) Result {
	r, err := b.Build(s.Rects[0], s.Rects[1], s.Points[0], s.Points[1])
	return Result{Route: r, Err: err}
}

func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
