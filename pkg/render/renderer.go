// pkg/render/renderer.go
package render

import "image/color"

// Renderer — приёмник команд рисования. Симуляция ничего из него не читает,
// кроме MeasureText для выравнивания текста.
type Renderer interface {
	Clear(clr color.Color)
	DrawRectangle(x, y, width, height float64, clr color.Color)
	DrawTriangleLines(x1, y1, x2, y2, x3, y3 float64, clr color.Color)
	DrawCircle(cx, cy, radius float64, clr color.Color)
	DrawCircleLines(cx, cy, radius float64, clr color.Color)
	// DrawText рисует текст, (x, y) — левый верхний угол.
	DrawText(text string, x, y float64, size int, clr color.Color)
	MeasureText(text string, size int) float64
}

// DrawTextCentered рисует текст по центру относительно cx.
func DrawTextCentered(r Renderer, text string, cx, y float64, size int, clr color.Color) {
	r.DrawText(text, cx-r.MeasureText(text, size)/2, y, size, clr)
}
