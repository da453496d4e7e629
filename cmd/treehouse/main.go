// cmd/treehouse/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-treehouse/internal/app"
	"go-treehouse/internal/assets"
	"go-treehouse/internal/audio"
	"go-treehouse/internal/config"
	"go-treehouse/internal/debug"
	"go-treehouse/internal/event"
	"go-treehouse/internal/state"
	"go-treehouse/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout растягивает поверхность на всё окно и перецентрирует сцену,
// когда размер окна меняется.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.stateMachine.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	opts := config.DefaultOptions()
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	// Отладочный сервер живёт, пока открыто окно
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := event.NewDispatcher()
	scene := app.NewScene(opts.Width, opts.Height, utils.NewPRNGService(opts.Seed))
	scene.Sprite.Color = opts.SpriteRGBA()
	designer := app.NewDesigner(scene, dispatcher, opts.ExportDir)

	app.NewLogListener(nil).Subscribe(dispatcher)

	player := audio.NewPlayer(opts.Muted, config.AudioSampleRate)
	if sp, ok := player.(*audio.SpeakerPlayer); ok {
		defer sp.Close()
	}
	dispatcher.Subscribe(event.TreePlanted, audio.NewToneListener(player))

	if opts.DebugAddr != "" {
		store := debug.NewStore()
		dispatcher.Subscribe(event.DesignChanged, store)
		go func() {
			if err := debug.Serve(ctx, opts.DebugAddr, debug.NewRouter(store)); err != nil {
				log.Println(err)
			}
		}()
	}
	designer.Publish()

	face, err := assets.LoadFontFace(config.FontSize)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewDesignState(sm, designer, face, opts))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          opts.Width,
		height:         opts.Height,
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Treehouse Island")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
