// internal/app/designer.go
package app

import (
	"go-treehouse/internal/component"
	"go-treehouse/internal/event"
)

// Designer is the controller behind every user action: it mutates the
// scene and announces the result on the event dispatcher.
type Designer struct {
	Scene           *Scene
	EventDispatcher *event.Dispatcher
	exportDir       string
}

// NewDesigner связывает сцену с диспетчером событий.
func NewDesigner(scene *Scene, dispatcher *event.Dispatcher, exportDir string) *Designer {
	if scene == nil {
		panic("scene cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Designer{
		Scene:           scene,
		EventDispatcher: dispatcher,
		exportDir:       exportDir,
	}
}

// Publish рассылает текущий снимок дизайна (например, при старте).
func (d *Designer) Publish() {
	d.EventDispatcher.Dispatch(event.Event{Type: event.DesignChanged, Data: d.Scene.Snapshot()})
}

func (d *Designer) AddPlatform() {
	p := d.Scene.AddPlatform()
	d.EventDispatcher.Dispatch(event.Event{Type: event.PlatformAdded, Data: p})
	d.Publish()
}

func (d *Designer) ChangeRoofColor() {
	if !d.Scene.ChangeRoofColor() {
		return
	}
	d.EventDispatcher.Dispatch(event.Event{Type: event.RoofColorChanged, Data: d.Scene.Roof.Color})
	d.Publish()
}

func (d *Designer) AddGem() {
	g := d.Scene.AddGem()
	d.EventDispatcher.Dispatch(event.Event{Type: event.GemAdded, Data: g})
	d.Publish()
}

// PlantTree обрабатывает клик по экрану. Клики мимо острова молча
// игнорируются.
func (d *Designer) PlantTree(x, y float64) (component.Tree, bool) {
	tree, ok := d.Scene.PlantTree(x, y)
	if !ok {
		return tree, false
	}
	d.EventDispatcher.Dispatch(event.Event{Type: event.TreePlanted, Data: tree})
	return tree, true
}

// ExportDesign writes the current snapshot to the export directory.
func (d *Designer) ExportDesign() (string, error) {
	path, err := ExportDesign(d.exportDir, d.Scene.Snapshot())
	if err != nil {
		d.EventDispatcher.Dispatch(event.Event{Type: event.ExportFailed, Data: err})
		return "", err
	}
	d.EventDispatcher.Dispatch(event.Event{Type: event.DesignExported, Data: path})
	return path, nil
}

// Resize перецентрирует сцену под новый размер окна.
func (d *Designer) Resize(width, height int) {
	if width == d.Scene.Width && height == d.Scene.Height {
		return
	}
	d.Scene.Resize(width, height)
	d.EventDispatcher.Dispatch(event.Event{Type: event.ViewportResized, Data: [2]int{width, height}})
	d.Publish()
}
