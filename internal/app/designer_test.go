package app

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"go-treehouse/internal/component"
	"go-treehouse/internal/event"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) types() []event.EventType {
	out := make([]event.EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

func newTestDesigner(t *testing.T) (*Designer, *eventLog) {
	t.Helper()
	d := NewDesigner(newTestScene(), event.NewDispatcher(), t.TempDir())
	l := &eventLog{}
	d.EventDispatcher.SubscribeMany(l,
		event.PlatformAdded, event.RoofColorChanged, event.GemAdded,
		event.TreePlanted, event.DesignExported, event.ExportFailed,
		event.ViewportResized, event.DesignChanged)
	return d, l
}

func TestDesignerAddPlatformPublishes(t *testing.T) {
	d, l := newTestDesigner(t)
	d.AddPlatform()

	got := l.types()
	if len(got) != 2 || got[0] != event.PlatformAdded || got[1] != event.DesignChanged {
		t.Fatalf("events = %v", got)
	}
	snap, ok := l.events[1].Data.(Design)
	if !ok || snap.Platforms != 1 {
		t.Errorf("DesignChanged data = %#v", l.events[1].Data)
	}
}

func TestDesignerChangeRoofColorWithoutRoofIsSilent(t *testing.T) {
	d, l := newTestDesigner(t)
	d.ChangeRoofColor()
	if len(l.events) != 0 {
		t.Errorf("events = %v, want none", l.types())
	}
}

func TestDesignerPlantTree(t *testing.T) {
	d, l := newTestDesigner(t)
	island := d.Scene.Island

	if _, ok := d.PlantTree(0, 0); ok {
		t.Error("planted outside the island")
	}
	if len(l.events) != 0 {
		t.Errorf("miss produced events %v", l.types())
	}

	tree, ok := d.PlantTree(island.X, island.Y)
	if !ok {
		t.Fatal("click in island center did not plant")
	}
	if len(l.events) != 1 || l.events[0].Type != event.TreePlanted {
		t.Fatalf("events = %v", l.types())
	}
	if l.events[0].Data.(component.Tree) != tree {
		t.Errorf("event tree = %v, want %v", l.events[0].Data, tree)
	}
}

func TestDesignerExport(t *testing.T) {
	d, l := newTestDesigner(t)
	d.AddGem()
	path, err := d.ExportDesign()
	if err != nil {
		t.Fatal(err)
	}
	last := l.events[len(l.events)-1]
	if last.Type != event.DesignExported || last.Data != path {
		t.Errorf("last event = %+v", last)
	}
}

func TestDesignerResizeSameSizeIsNoop(t *testing.T) {
	d, l := newTestDesigner(t)
	d.Resize(d.Scene.Width, d.Scene.Height)
	if len(l.events) != 0 {
		t.Errorf("events = %v", l.types())
	}
	d.Resize(1024, 768)
	if got := l.types(); len(got) != 2 || got[0] != event.ViewportResized {
		t.Errorf("events = %v", got)
	}
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	d, _ := newTestDesigner(t)
	NewLogListener(log.New(&buf, "", 0)).Subscribe(d.EventDispatcher)

	d.AddPlatform()
	d.ChangeRoofColor()
	d.PlantTree(d.Scene.Island.X, d.Scene.Island.Y)

	out := buf.String()
	for _, want := range []string{"platform added", "roof color changed to #FF4500", "tree planted"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
