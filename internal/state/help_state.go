// internal/state/help_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-treehouse/internal/config"
)

// Убеждаемся, что HelpState соответствует интерфейсу State
var _ State = (*HelpState)(nil)

var helpLines = []string{
	"Treehouse Island",
	"",
	"P  add a platform (the first one also builds the roof)",
	"R  cycle the roof color",
	"G  add a gem near the tree",
	"E  export the design to " + config.ExportFileName,
	"Click on the island to plant a tree",
	"",
	"F1 / H / Esc  close this help",
}

// HelpState рисует справку поверх живой сцены; анимация продолжается.
type HelpState struct {
	stateMachine  *StateMachine
	previousState State
	face          font.Face
}

func NewHelpState(sm *StateMachine, prevState State, face font.Face) *HelpState {
	return &HelpState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *HelpState) Enter() {}

func (s *HelpState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) ||
		inpututil.IsKeyJustPressed(ebiten.KeyH) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Close()
	}
}

// Close возвращает предыдущее состояние
func (s *HelpState) Close() {
	s.stateMachine.SetState(s.previousState)
}

func (s *HelpState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	if s.face == nil {
		return
	}
	lineHeight := s.face.Metrics().Height.Ceil() + 6
	y := h/2 - lineHeight*len(helpLines)/2
	for _, line := range helpLines {
		bounds := text.BoundString(s.face, line)
		text.Draw(screen, line, s.face, (w-bounds.Dx())/2, y, config.TextLightColor)
		y += lineHeight
	}
}

// Resize передаётся дальше, чтобы сцена под справкой тоже перестроилась
func (s *HelpState) Resize(width, height int) {
	if r, ok := s.previousState.(Resizer); ok {
		r.Resize(width, height)
	}
}

func (s *HelpState) Exit() {}
