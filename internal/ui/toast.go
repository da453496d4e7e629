// internal/ui/toast.go
package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-treehouse/internal/config"
	"go-treehouse/internal/event"
)

// Toast: короткое сообщение внизу экрана (результат экспорта).
type Toast struct {
	Message  string
	shownAt  time.Time
	duration time.Duration
	clock    func() time.Time
}

func NewToast(duration time.Duration, clock func() time.Time) *Toast {
	if clock == nil {
		clock = time.Now
	}
	return &Toast{duration: duration, clock: clock}
}

func (t *Toast) Show(message string, now time.Time) {
	t.Message = message
	t.shownAt = now
}

func (t *Toast) Visible(now time.Time) bool {
	return t.Message != "" && now.Sub(t.shownAt) < t.duration
}

// OnEvent показывает итог экспорта.
func (t *Toast) OnEvent(e event.Event) {
	switch e.Type {
	case event.DesignExported:
		t.Show(fmt.Sprintf("Design saved to %v", e.Data), t.clock())
	case event.ExportFailed:
		t.Show(fmt.Sprintf("Export failed: %v", e.Data), t.clock())
	}
}

func (t *Toast) Draw(screen *ebiten.Image, face font.Face, now time.Time) {
	if !t.Visible(now) || face == nil {
		return
	}
	bounds := text.BoundString(face, t.Message)
	const pad = 8
	w := float32(bounds.Dx() + pad*2)
	h := float32(face.Metrics().Height.Ceil() + pad*2)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (float32(sw) - w) / 2
	y := float32(sh) - h - config.ToolbarMargin

	vector.DrawFilledRect(screen, x, y, w, h, config.ToastColor, true)
	drawCentered(screen, t.Message, face, x+w/2, y+h/2, config.TextLightColor)
}
