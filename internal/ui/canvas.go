// internal/ui/canvas.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Canvas рисует на ebiten.Image и реализует render.Renderer.
type Canvas struct {
	screen   *ebiten.Image
	fontFace font.Face
	ascent   float64
	height   float64
}

func NewCanvas() *Canvas {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	return &Canvas{
		fontFace: face,
		ascent:   float64(metrics.Ascent.Round()),
		height:   float64(metrics.Height.Round()),
	}
}

// Target задаёт экран текущего кадра.
func (c *Canvas) Target(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) Clear(clr color.Color) {
	c.screen.Fill(clr)
}

func (c *Canvas) DrawRectangle(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (c *Canvas) DrawTriangleLines(x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	vector.StrokeLine(c.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, true)
	vector.StrokeLine(c.screen, float32(x2), float32(y2), float32(x3), float32(y3), 1, clr, true)
	vector.StrokeLine(c.screen, float32(x3), float32(y3), float32(x1), float32(y1), 1, clr, true)
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.screen, float32(cx), float32(cy), float32(radius), clr, true)
}

func (c *Canvas) DrawCircleLines(cx, cy, radius float64, clr color.Color) {
	vector.StrokeCircle(c.screen, float32(cx), float32(cy), float32(radius), 1, clr, true)
}

// DrawText масштабирует растровый шрифт 7x13 до нужного размера.
func (c *Canvas) DrawText(s string, x, y float64, size int, clr color.Color) {
	scale := c.scale(size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y+c.ascent*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(c.screen, s, c.fontFace, op)
}

func (c *Canvas) MeasureText(s string, size int) float64 {
	return float64(font.MeasureString(c.fontFace, s).Round()) * c.scale(size)
}

func (c *Canvas) scale(size int) float64 {
	return float64(size) / c.height
}
