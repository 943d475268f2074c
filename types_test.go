package main

import (
	"os"
	"path/filepath"
	"testing"

	"elbow/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
rects:
  - position: {x: 100, y: 100}
    size: {width: 80, height: 40}
  - position: {x: 300, y: 200}
    size: {width: 100, height: 60}
points:
  - point: {x: 100, y: 80}
    angle: 270
  - point: {x: 300, y: 230}
    angle: 90
`

func TestParseScene_YAML(t *testing.T) {
	s, err := ParseScene([]byte(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, route.Size{Width: 100, Height: 60}, s.Rects[1].Size)
	assert.Equal(t, route.ConnectionPoint{Point: route.Point{X: 100, Y: 80}, Angle: 270}, s.Points[0])
}

func TestParseScene_JSON(t *testing.T) {
	data := `{"rects":[{"position":{"x":0,"y":0},"size":{"width":10,"height":10}},
	{"position":{"x":50,"y":0},"size":{"width":10,"height":10}}],
	"points":[{"point":{"x":5,"y":0},"angle":0},{"point":{"x":45,"y":0},"angle":180}]}`

	s, err := ParseScene([]byte(data))
	require.NoError(t, err)

	res := s.Route(route.New())
	require.NoError(t, res.Err)
	assert.Len(t, res.Route, 4)
}

func TestParseScene_Shape(t *testing.T) {
	_, err := ParseScene([]byte("rects: []\npoints: []\n"))
	assert.ErrorIs(t, err, ErrSceneShape)

	_, err = ParseScene([]byte("rects: [oops"))
	assert.Error(t, err)
}

func TestParseScene_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"infinite position", "rects:\n  - position: {x: .inf, y: 100}\n    size: {width: 80, height: 40}\n  - position: {x: 300, y: 200}\n    size: {width: 100, height: 60}\npoints:\n  - point: {x: 140, y: 100}\n    angle: 0\n  - point: {x: 250, y: 200}\n    angle: 180\n"},
		{"nan size", "rects:\n  - position: {x: 100, y: 100}\n    size: {width: .nan, height: 40}\n  - position: {x: 300, y: 200}\n    size: {width: 100, height: 60}\npoints:\n  - point: {x: 140, y: 100}\n    angle: 0\n  - point: {x: 250, y: 200}\n    angle: 180\n"},
		{"negative infinite angle", "rects:\n  - position: {x: 100, y: 100}\n    size: {width: 80, height: 40}\n  - position: {x: 300, y: 200}\n    size: {width: 100, height: 60}\npoints:\n  - point: {x: 140, y: 100}\n    angle: 0\n  - point: {x: 250, y: 200}\n    angle: -.inf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.data))
			assert.ErrorIs(t, err, ErrSceneValue)
		})
	}
}

func TestLoadScene(t *testing.T) {
	s, err := LoadScene("")
	require.NoError(t, err)
	assert.Equal(t, DefaultScene(), s)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0644))
	s, err = LoadScene(path)
	require.NoError(t, err)
	assert.Equal(t, 270.0, s.Points[0].Angle)

	_, err = LoadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScene_MarshalRoundTrip(t *testing.T) {
	data, err := DefaultScene().Marshal()
	require.NoError(t, err)

	s, err := ParseScene(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultScene(), s)
}

func TestDefaultScene_Routes(t *testing.T) {
	res := DefaultScene().Route(route.New())
	require.NoError(t, res.Err)
	assert.Len(t, res.Route, 5)
}
