// internal/app/log_listener.go
package app

import (
	"log"

	"go-treehouse/internal/component"
	"go-treehouse/internal/event"
	"go-treehouse/pkg/utils"
	"image/color"
)

// LogListener пишет пользовательские действия в стандартный лог.
type LogListener struct {
	logger *log.Logger
}

func NewLogListener(logger *log.Logger) *LogListener {
	if logger == nil {
		logger = log.Default()
	}
	return &LogListener{logger: logger}
}

// Subscribe подписывает слушателя на все пользовательские события.
func (l *LogListener) Subscribe(d *event.Dispatcher) {
	d.SubscribeMany(l,
		event.PlatformAdded,
		event.RoofColorChanged,
		event.GemAdded,
		event.TreePlanted,
		event.DesignExported,
		event.ExportFailed,
		event.ViewportResized,
	)
}

func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case component.Platform:
		l.logger.Printf("platform added at (%.0f, %.0f)", data.X, data.Y)
	case component.Gem:
		l.logger.Printf("gem added at (%.1f, %.1f)", data.X, data.Y)
	case component.Tree:
		l.logger.Printf("tree planted at (%.0f, %.0f), size %.1f", data.X, data.Y, data.Size)
	case color.RGBA:
		l.logger.Printf("roof color changed to %s", utils.HexColor(data))
	case [2]int:
		l.logger.Printf("viewport resized to %dx%d", data[0], data[1])
	case error:
		l.logger.Printf("export failed: %v", data)
	case string:
		l.logger.Printf("design exported to %s", data)
	default:
		l.logger.Printf("%s", e.Type)
	}
}
