// internal/config/options.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"

	"go-treehouse/pkg/utils"
)

// Options: параметры запуска, задаваемые флагами командной строки.
type Options struct {
	Width       int
	Height      int
	Seed        int64 // 0: сид от текущего времени
	ExportDir   string
	DebugAddr   string // пустая строка отключает отладочный сервер
	Muted       bool
	ShowFPS     bool
	SpriteColor string
}

// DefaultOptions возвращает параметры по умолчанию.
func DefaultOptions() Options {
	return Options{
		Width:       ScreenWidth,
		Height:      ScreenHeight,
		ExportDir:   ".",
		DebugAddr:   "localhost:6060",
		SpriteColor: utils.HexColor(SpriteColor),
	}
}

// RegisterFlags привязывает поля к набору флагов.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "initial window width")
	fs.IntVar(&o.Height, "height", o.Height, "initial window height")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random seed for gems and planted trees (0 = time based)")
	fs.StringVar(&o.ExportDir, "export-dir", o.ExportDir, "directory for "+ExportFileName)
	fs.StringVar(&o.DebugAddr, "debug-addr", o.DebugAddr, "debug HTTP listen address, empty to disable")
	fs.BoolVar(&o.Muted, "mute", o.Muted, "disable the planting tone")
	fs.BoolVar(&o.ShowFPS, "fps", o.ShowFPS, "show FPS counter")
	fs.StringVar(&o.SpriteColor, "sprite-color", o.SpriteColor, "sprite color as #RRGGBB")
}

// Validate проверяет согласованность параметров.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}
	if o.ExportDir == "" {
		return errors.New("export directory must not be empty")
	}
	if _, err := utils.ParseHexColor(o.SpriteColor); err != nil {
		return fmt.Errorf("invalid sprite color: %w", err)
	}
	return nil
}

// SpriteRGBA возвращает цвет спрайта; при ошибке разбора возвращает цвет по умолчанию.
func (o Options) SpriteRGBA() color.RGBA {
	c, err := utils.ParseHexColor(o.SpriteColor)
	if err != nil {
		return SpriteColor
	}
	return c
}
