// internal/state/design_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-treehouse/internal/app"
	"go-treehouse/internal/component"
	"go-treehouse/internal/config"
	"go-treehouse/internal/event"
	"go-treehouse/internal/ui"
	"go-treehouse/pkg/render"
)

// DesignState: основное состояние: сцена, панель инструментов и посадка деревьев
type DesignState struct {
	sm       *StateMachine
	designer *app.Designer
	renderer *render.SceneRenderer
	canvas   *render.EbitenCanvas
	toolbar  *ui.Toolbar
	toast    *ui.Toast
	face     font.Face
	showFPS  bool

	clock     func() time.Time
	startTime time.Time
	planted   []component.Tree // деревья, которые будут нарисованы один раз в следующем кадре
	touchIDs  []ebiten.TouchID
}

func NewDesignState(sm *StateMachine, designer *app.Designer, face font.Face, opts config.Options) *DesignState {
	s := &DesignState{
		sm:        sm,
		designer:  designer,
		renderer:  render.NewSceneRenderer(render.DefaultSceneColors()),
		toolbar:   ui.NewToolbar(config.ToolbarMargin, config.ToolbarMargin),
		face:      face,
		showFPS:   opts.ShowFPS,
		clock:     time.Now,
		startTime: time.Now(),
	}
	s.toast = ui.NewToast(config.ToastDuration, func() time.Time { return s.clock() })
	designer.EventDispatcher.SubscribeMany(s.toast, event.DesignExported, event.ExportFailed)

	s.toolbar.Add("Add Platform", ebiten.KeyP, designer.AddPlatform)
	s.toolbar.Add("Roof Color", ebiten.KeyR, designer.ChangeRoofColor)
	s.toolbar.Add("Add Gem", ebiten.KeyG, designer.AddGem)
	s.toolbar.Add("Export", ebiten.KeyE, s.export)
	return s
}

func (s *DesignState) Enter() {
	// Ничего не делаем при входе
}

func (s *DesignState) Update(deltaTime float64) {
	now := s.clock()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.sm.SetState(NewHelpState(s.sm, s, s.face))
		return
	}

	s.toolbar.HandleKeys(inpututil.IsKeyJustPressed, now)

	cx, cy := ebiten.CursorPosition()
	s.toolbar.SetHover(float32(cx), float32(cy))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.HandlePointer(cx, cy, now)
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.HandlePointer(x, y, now)
	}
}

// HandlePointer обрабатывает клик или касание: сначала панель,
// затем посадка дерева на острове.
func (s *DesignState) HandlePointer(x, y int, now time.Time) {
	if s.toolbar.HandleClick(float32(x), float32(y), now) {
		return
	}
	if tree, ok := s.designer.PlantTree(float64(x), float64(y)); ok {
		s.planted = append(s.planted, tree)
	}
}

func (s *DesignState) export() {
	// Ошибку показывает Toast и пишет LogListener
	_, _ = s.designer.ExportDesign()
}

// AnimationTime: секунды с момента запуска, по ним считается вся анимация
func (s *DesignState) AnimationTime() float64 {
	return s.clock().Sub(s.startTime).Seconds()
}

func (s *DesignState) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		s.canvas = render.NewEbitenCanvas()
	}
	now := s.clock()
	s.canvas.Target(screen)

	s.renderer.Draw(s.canvas, s.designer.Scene, s.AnimationTime())
	s.drawPlanted(s.canvas)

	s.toolbar.Draw(screen, s.face, now)
	s.toast.Draw(screen, s.face, now)

	if s.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 10, screen.Bounds().Dy()-20)
	}
}

// drawPlanted рисует посаженные деревья поверх сцены и забывает их:
// следующий полный кадр их уже не покажет.
func (s *DesignState) drawPlanted(c render.Canvas) {
	for _, tree := range s.planted {
		s.renderer.DrawTree(c, tree)
	}
	s.planted = s.planted[:0]
}

func (s *DesignState) Resize(width, height int) {
	s.designer.Resize(width, height)
}

func (s *DesignState) Exit() {
	// Ничего не делаем при выходе
}
