package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"elbow/route"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var ErrCanvasTooLarge = errors.New("scene is too large to draw")

// Canvas draws a scene and the outcome of routing it. It never mutates the
// scene.
type Canvas struct {
	scene      *Scene
	result     Result
	cellWidth  float64
	cellHeight float64
}

type point struct {
	X, Y int
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func NewCanvas(scene *Scene, result Result) *Canvas {
	return &Canvas{
		scene:      scene,
		result:     result,
		cellWidth:  defaultCellWidth,
		cellHeight: defaultCellHeight,
	}
}

// SetScale sets how many world units one character cell covers.
func (c *Canvas) SetScale(cellWidth, cellHeight float64) {
	if cellWidth > 0 {
		c.cellWidth = cellWidth
	}
	if cellHeight > 0 {
		c.cellHeight = cellHeight
	}
}

func (c *Canvas) bounds() bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	empty := true
	grow := func(x, y float64) {
		empty = false
		b.minX = math.Min(b.minX, x)
		b.minY = math.Min(b.minY, y)
		b.maxX = math.Max(b.maxX, x)
		b.maxY = math.Max(b.maxY, y)
	}
	for _, r := range c.scene.Rects {
		grow(r.Left(), r.Top())
		grow(r.Right(), r.Bottom())
	}
	for _, cp := range c.scene.Points {
		grow(cp.Point.X, cp.Point.Y)
	}
	for _, p := range c.result.Route {
		grow(p.X, p.Y)
	}
	if empty {
		return bounds{}
	}
	return b
}

func (c *Canvas) toCell(b bounds, x, y float64) point {
	return point{
		X: int(math.Round((x-b.minX)/c.cellWidth)) + renderPadding,
		Y: int(math.Round((y-b.minY)/c.cellHeight)) + renderPadding,
	}
}

// withinLimit is false for NaN.
func withinLimit(v, limit float64) bool {
	return v >= 0 && v <= limit
}

// Render returns the scene as text, one string per row. When routing failed
// the first row holds the error message and no route is drawn.
func (c *Canvas) Render() ([]string, error) {
	b := c.bounds()
	cols := (b.maxX - b.minX) / c.cellWidth
	rows := (b.maxY - b.minY) / c.cellHeight
	if !withinLimit(cols, maxGridSize) || !withinLimit(rows, maxGridSize) {
		return nil, fmt.Errorf("%w: %gx%g cells", ErrCanvasTooLarge, cols, rows)
	}

	far := c.toCell(b, b.maxX, b.maxY)
	width := far.X + renderPadding + 1
	height := far.Y + renderPadding + 1

	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = make([]rune, width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	for _, r := range c.scene.Rects {
		c.drawRect(canvas, c.toCell(b, r.Left(), r.Top()), c.toCell(b, r.Right(), r.Bottom()))
	}

	if c.result.Err == nil && len(c.result.Route) > 0 {
		c.drawRoute(canvas, c.cellPath(b, c.result.Route))
	}

	for _, cp := range c.scene.Points {
		p := c.toCell(b, cp.Point.X, cp.Point.Y)
		if c.isValidPos(canvas, p.X, p.Y) {
			canvas[p.Y][p.X] = 'o'
		}
	}

	lines := make([]string, 0, height+1)
	if c.result.Err != nil {
		lines = append(lines, c.result.Err.Error())
	}
	for _, row := range canvas {
		lines = append(lines, string(row))
	}
	return lines, nil
}

func (c *Canvas) drawRect(canvas [][]rune, topLeft, bottomRight point) {
	for y := topLeft.Y; y <= bottomRight.Y; y++ {
		for x := topLeft.X; x <= bottomRight.X; x++ {
			if !c.isValidPos(canvas, x, y) {
				continue
			}
			onTop := y == topLeft.Y || y == bottomRight.Y
			onSide := x == topLeft.X || x == bottomRight.X
			switch {
			case onTop && onSide:
				canvas[y][x] = '+'
			case onTop:
				canvas[y][x] = '-'
			case onSide:
				canvas[y][x] = '|'
			}
		}
	}
}

// cellPath maps a route to cells. Consecutive duplicates are dropped and a
// segment that rounds to a diagonal gets a horizontal-first bend.
func (c *Canvas) cellPath(b bounds, r route.Route) []point {
	path := make([]point, 0, len(r)+2)
	for _, p := range r {
		cell := c.toCell(b, p.X, p.Y)
		if len(path) > 0 {
			last := path[len(path)-1]
			if last == cell {
				continue
			}
			if last.X != cell.X && last.Y != cell.Y {
				path = append(path, point{X: cell.X, Y: last.Y})
			}
		}
		path = append(path, cell)
	}
	return path
}

func (c *Canvas) drawRoute(canvas [][]rune, path []point) {
	for i := 0; i+1 < len(path); i++ {
		c.drawLineSegment(canvas, path[i], path[i+1])
	}
	for i := 1; i+1 < len(path); i++ {
		c.drawCorner(canvas, path[i], path[i-1], path[i+1])
	}
}

func (c *Canvas) drawLineSegment(canvas [][]rune, from, to point) {
	if from.Y == to.Y {
		for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
			c.setLine(canvas, x, from.Y, '─', '│')
		}
		return
	}
	for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
		c.setLine(canvas, from.X, y, '│', '─')
	}
}

func (c *Canvas) setLine(canvas [][]rune, x, y int, char, crossing rune) {
	if !c.isValidPos(canvas, x, y) {
		return
	}
	if canvas[y][x] == crossing {
		canvas[y][x] = '┼'
		return
	}
	canvas[y][x] = char
}

func (c *Canvas) drawCorner(canvas [][]rune, corner, prev, next point) {
	if !c.isValidPos(canvas, corner.X, corner.Y) {
		return
	}

	var cornerChar rune

	if prev.X != corner.X && next.Y != corner.Y {
		if prev.X < corner.X && corner.Y < next.Y {
			cornerChar = '┐'
		} else if prev.X < corner.X && corner.Y > next.Y {
			cornerChar = '┘'
		} else if prev.X > corner.X && corner.Y < next.Y {
			cornerChar = '┌'
		} else {
			cornerChar = '└'
		}
	} else if prev.Y != corner.Y && next.X != corner.X {
		if prev.Y < corner.Y && corner.X < next.X {
			cornerChar = '└'
		} else if prev.Y < corner.Y && corner.X > next.X {
			cornerChar = '┘'
		} else if prev.Y > corner.Y && corner.X < next.X {
			cornerChar = '┌'
		} else {
			cornerChar = '┐'
		}
	} else {
		return
	}

	canvas[corner.Y][corner.X] = cornerChar
}

func (c *Canvas) isValidPos(canvas [][]rune, x, y int) bool {
	return y >= 0 && y < len(canvas) && x >= 0 && x < len(canvas[0])
}

func (c *Canvas) ExportToPNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := c.WritePNG(file); err != nil {
		return err
	}
	return file.Close()
}

// WritePNG draws the scene at one pixel per world unit.
func (c *Canvas) WritePNG(w io.Writer) error {
	if len(c.scene.Rects) == 0 && len(c.scene.Points) == 0 {
		return fmt.Errorf("nothing to export")
	}

	b := c.bounds()
	if !withinLimit(b.maxX-b.minX, maxImageSize) || !withinLimit(b.maxY-b.minY, maxImageSize) {
		return fmt.Errorf("%w: %gx%g pixels", ErrCanvasTooLarge, b.maxX-b.minX, b.maxY-b.minY)
	}
	offsetX := imagePadding - b.minX
	offsetY := imagePadding - b.minY
	imageWidth := int(math.Ceil(b.maxX-b.minX)) + 2*imagePadding
	imageHeight := int(math.Ceil(b.maxY-b.minY)) + 2*imagePadding

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	fills := [][2]string{{rect1Fill, rect1Border}, {rect2Fill, rect2Border}}
	for i, r := range c.scene.Rects {
		colors := fills[i%len(fills)]
		c.drawRectPNG(dc, r, offsetX, offsetY, colors[0], colors[1])
	}

	pointFills := []string{point1Fill, point2Fill}
	for i, cp := range c.scene.Points {
		c.drawPointPNG(dc, cp, offsetX, offsetY, pointFills[i%len(pointFills)])
	}

	if c.result.Err != nil {
		dc.SetHexColor(errorColor)
		dc.DrawString(c.result.Err.Error(), 10, 20)
	} else {
		c.drawRoutePNG(dc, c.result.Route, offsetX, offsetY)
	}

	return dc.EncodePNG(w)
}

func (c *Canvas) drawRectPNG(dc *gg.Context, r route.Rect, offsetX, offsetY float64, fill, border string) {
	dc.Push()
	defer dc.Pop()

	dc.DrawRectangle(r.Left()+offsetX, r.Top()+offsetY, r.Size.Width, r.Size.Height)
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor(border)
	dc.SetLineWidth(2)
	dc.Stroke()
}

func (c *Canvas) drawPointPNG(dc *gg.Context, cp route.ConnectionPoint, offsetX, offsetY float64, fill string) {
	dc.Push()
	defer dc.Pop()

	dc.DrawCircle(cp.Point.X+offsetX, cp.Point.Y+offsetY, pointRadius)
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor(pointBorder)
	dc.SetLineWidth(2)
	dc.Stroke()
}

func (c *Canvas) drawRoutePNG(dc *gg.Context, r route.Route, offsetX, offsetY float64) {
	if len(r) < 2 {
		return
	}

	dc.Push()
	defer dc.Pop()

	dc.SetHexColor(routeColor)
	dc.SetLineWidth(4)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(r[0].X+offsetX, r[0].Y+offsetY)
	for _, p := range r[1:] {
		dc.LineTo(p.X+offsetX, p.Y+offsetY)
	}
	dc.Stroke()
}
