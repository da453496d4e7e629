// pkg/render/canvas.go
package render

import "image/color"

// Canvas: минимальный набор примитивов, которым рисуется сцена.
type Canvas interface {
	Fill(clr color.Color)
	FillRect(x, y, width, height float32, clr color.Color)
	FillCircle(cx, cy, radius float32, clr color.Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float32, clr color.Color)
	StrokeLine(x1, y1, x2, y2, width float32, clr color.Color)
}
