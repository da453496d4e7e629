// internal/ui/button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"go-treehouse/internal/config"
	"go-treehouse/internal/utils"
	"go-treehouse/pkg/render"
)

// Button: прямоугольная кнопка панели инструментов с горячей клавишей.
type Button struct {
	X, Y          float32
	Width, Height float32
	Label         string
	Key           ebiten.Key
	OnClick       func()
	LastClickTime time.Time
	Hovered       bool
}

// Contains проверяет попадание точки в кнопку
func (b *Button) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Press запускает действие кнопки и анимацию нажатия.
func (b *Button) Press(now time.Time) {
	b.LastClickTime = now
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Scale: масштаб кнопки: после нажатия она «вспухает» и плавно
// возвращается к 1 за ButtonPulseDuration.
func (b *Button) Scale(now time.Time) float32 {
	if b.LastClickTime.IsZero() {
		return 1
	}
	elapsed := float32(now.Sub(b.LastClickTime).Seconds())
	if elapsed < 0 || elapsed >= config.ButtonPulseDuration {
		return 1
	}
	progress := ease.OutQuad(elapsed, 0, 1, config.ButtonPulseDuration)
	return utils.Lerp(1+config.ButtonPulseScale, 1, progress)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, now time.Time) {
	scale := b.Scale(now)
	w := b.Width * scale
	h := b.Height * scale
	x := b.X + (b.Width-w)/2
	y := b.Y + (b.Height-h)/2

	fill := config.ButtonColor
	if b.Hovered {
		fill = config.ButtonHoverColor
	}
	// Тень
	vector.DrawFilledRect(screen, x+2, y+2, w, h, render.DarkenColor(fill), true)
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, config.ButtonStrokeWidth, config.ButtonStrokeColor, true)

	if face != nil {
		drawCentered(screen, b.Label, face, x+w/2, y+h/2, config.TextLightColor)
	}
}

// drawCentered рисует строку с центром в (cx, cy)
func drawCentered(screen *ebiten.Image, label string, face font.Face, cx, cy float32, clr color.Color) {
	bounds := text.BoundString(face, label)
	tx := int(cx) - bounds.Dx()/2 - bounds.Min.X
	ty := int(cy) - (bounds.Min.Y+bounds.Max.Y)/2
	text.Draw(screen, label, face, tx, ty, clr)
}
