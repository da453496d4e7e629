package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-treehouse/internal/config"
	"go-treehouse/internal/event"
)

func TestToolbarLayoutAndHitTest(t *testing.T) {
	tb := NewToolbar(10, 20)
	a := tb.Add("A", ebiten.KeyA, nil)
	b := tb.Add("B", ebiten.KeyB, nil)

	if b.X != a.X+config.ButtonWidth+config.ButtonGap {
		t.Errorf("second button x = %v", b.X)
	}
	if got := tb.ButtonAt(11, 21); got != a {
		t.Errorf("ButtonAt(11, 21) = %v, want first button", got)
	}
	if got := tb.ButtonAt(b.X+1, 21); got != b {
		t.Errorf("ButtonAt on second = %v", got)
	}
	// промежуток между кнопками
	if got := tb.ButtonAt(a.X+config.ButtonWidth+1, 21); got != nil {
		t.Errorf("gap hit %v", got.Label)
	}
	if got := tb.ButtonAt(11, 20+config.ButtonHeight+1); got != nil {
		t.Errorf("below toolbar hit %v", got.Label)
	}
}

func TestToolbarHandleClick(t *testing.T) {
	tb := NewToolbar(0, 0)
	clicks := 0
	tb.Add("Add", ebiten.KeyP, func() { clicks++ })
	now := time.Unix(100, 0)

	if !tb.HandleClick(5, 5, now) {
		t.Error("click on button not consumed")
	}
	if tb.HandleClick(500, 500, now) {
		t.Error("click outside consumed")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if !tb.Buttons[0].LastClickTime.Equal(now) {
		t.Error("press time not recorded")
	}
}

func TestToolbarHandleKeys(t *testing.T) {
	tb := NewToolbar(0, 0)
	var fired []string
	tb.Add("Platform", ebiten.KeyP, func() { fired = append(fired, "p") })
	tb.Add("Gem", ebiten.KeyG, func() { fired = append(fired, "g") })

	tb.HandleKeys(func(k ebiten.Key) bool { return k == ebiten.KeyG }, time.Now())

	if len(fired) != 1 || fired[0] != "g" {
		t.Errorf("fired = %v, want [g]", fired)
	}
}

func TestToolbarHover(t *testing.T) {
	tb := NewToolbar(0, 0)
	a := tb.Add("A", ebiten.KeyA, nil)
	b := tb.Add("B", ebiten.KeyB, nil)
	tb.SetHover(b.X+1, 1)
	if a.Hovered || !b.Hovered {
		t.Errorf("hover a=%v b=%v", a.Hovered, b.Hovered)
	}
}

func TestButtonScalePulse(t *testing.T) {
	b := &Button{}
	now := time.Unix(50, 0)
	if s := b.Scale(now); s != 1 {
		t.Errorf("scale before any click = %v", s)
	}
	b.Press(now)
	if s := b.Scale(now); s != 1+config.ButtonPulseScale {
		t.Errorf("scale at press = %v, want %v", s, 1+config.ButtonPulseScale)
	}
	mid := b.Scale(now.Add(100 * time.Millisecond))
	if mid <= 1 || mid >= 1+config.ButtonPulseScale {
		t.Errorf("scale mid-pulse = %v", mid)
	}
	if s := b.Scale(now.Add(time.Second)); s != 1 {
		t.Errorf("scale after pulse = %v", s)
	}
}

func TestToastExportEvents(t *testing.T) {
	now := time.Unix(1000, 0)
	toast := NewToast(config.ToastDuration, func() time.Time { return now })

	if toast.Visible(now) {
		t.Error("empty toast visible")
	}
	toast.OnEvent(event.Event{Type: event.DesignExported, Data: "/tmp/treehouse-design.json"})
	if !toast.Visible(now) || !strings.Contains(toast.Message, "treehouse-design.json") {
		t.Errorf("toast = %q", toast.Message)
	}
	if toast.Visible(now.Add(config.ToastDuration)) {
		t.Error("toast still visible after its duration")
	}

	toast.OnEvent(event.Event{Type: event.ExportFailed, Data: errors.New("disk full")})
	if !strings.Contains(toast.Message, "disk full") {
		t.Errorf("toast = %q", toast.Message)
	}
}
