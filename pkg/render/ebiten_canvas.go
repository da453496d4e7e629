// pkg/render/ebiten_canvas.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas рисует примитивы на *ebiten.Image через пакет vector.
type EbitenCanvas struct {
	dst     *ebiten.Image
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewEbitenCanvas() *EbitenCanvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &EbitenCanvas{
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 8),
		fillIs:  make([]uint16, 0, 8),
	}
}

// Target задаёт изображение, на котором будет идти отрисовка кадра.
func (c *EbitenCanvas) Target(dst *ebiten.Image) *EbitenCanvas {
	c.dst = dst
	return c
}

func (c *EbitenCanvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *EbitenCanvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(c.dst, x, y, width, height, clr, true)
}

func (c *EbitenCanvas) FillCircle(cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.dst, cx, cy, radius, clr, true)
}

func (c *EbitenCanvas) StrokeLine(x1, y1, x2, y2, width float32, clr color.Color) {
	vector.StrokeLine(c.dst, x1, y1, x2, y2, width, clr, true)
}

func (c *EbitenCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	path := vector.Path{}
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	rgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.fillVs, c.fillIs = path.AppendVerticesAndIndicesForFilling(c.fillVs[:0], c.fillIs[:0])
	for i := range c.fillVs {
		c.fillVs[i].SrcX = 0
		c.fillVs[i].SrcY = 0
		c.fillVs[i].ColorR = float32(rgba.R) / 255
		c.fillVs[i].ColorG = float32(rgba.G) / 255
		c.fillVs[i].ColorB = float32(rgba.B) / 255
		c.fillVs[i].ColorA = float32(rgba.A) / 255
	}
	c.dst.DrawTriangles(c.fillVs, c.fillIs, c.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
