// internal/event/types.go
package event

const (
	PlatformAdded    EventType = "PlatformAdded"    // Data: component.Platform
	RoofColorChanged EventType = "RoofColorChanged" // Data: color.RGBA
	GemAdded         EventType = "GemAdded"         // Data: component.Gem
	TreePlanted      EventType = "TreePlanted"      // Data: component.Tree
	DesignExported   EventType = "DesignExported"   // Data: путь к файлу
	ExportFailed     EventType = "ExportFailed"     // Data: error
	ViewportResized  EventType = "ViewportResized"  // Data: [2]int{w, h}
	DesignChanged    EventType = "DesignChanged"    // Data: снимок дизайна после любой мутации
)
