// internal/ui/toolbar.go
package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-treehouse/internal/config"
)

// Toolbar: горизонтальный ряд кнопок в левом верхнем углу.
type Toolbar struct {
	X, Y    float32
	Buttons []*Button
}

func NewToolbar(x, y float32) *Toolbar {
	return &Toolbar{X: x, Y: y}
}

// Add appends a button to the right of the existing ones.
func (t *Toolbar) Add(label string, key ebiten.Key, onClick func()) *Button {
	x := t.X + float32(len(t.Buttons))*(config.ButtonWidth+config.ButtonGap)
	b := &Button{
		X:       x,
		Y:       t.Y,
		Width:   config.ButtonWidth,
		Height:  config.ButtonHeight,
		Label:   label,
		Key:     key,
		OnClick: onClick,
	}
	t.Buttons = append(t.Buttons, b)
	return b
}

// ButtonAt возвращает кнопку под точкой или nil.
func (t *Toolbar) ButtonAt(x, y float32) *Button {
	for _, b := range t.Buttons {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// HandleClick нажимает кнопку под курсором. Возвращает false, если
// клик пришёлся мимо панели и должен уйти в сцену.
func (t *Toolbar) HandleClick(x, y float32, now time.Time) bool {
	b := t.ButtonAt(x, y)
	if b == nil {
		return false
	}
	b.Press(now)
	return true
}

// HandleKeys нажимает кнопки, чьи горячие клавиши только что нажаты.
func (t *Toolbar) HandleKeys(justPressed func(ebiten.Key) bool, now time.Time) {
	for _, b := range t.Buttons {
		if justPressed(b.Key) {
			b.Press(now)
		}
	}
}

// SetHover подсвечивает кнопку под курсором
func (t *Toolbar) SetHover(x, y float32) {
	for _, b := range t.Buttons {
		b.Hovered = b.Contains(x, y)
	}
}

func (t *Toolbar) Draw(screen *ebiten.Image, face font.Face, now time.Time) {
	for _, b := range t.Buttons {
		b.Draw(screen, face, now)
	}
}
