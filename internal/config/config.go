// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Остров и центральное дерево привязаны к центру экрана
	IslandRadius  = 150.0
	IslandOffsetY = 100.0
	TreeOffsetY   = 50.0
	SpriteOffsetY = 50.0

	TreeSize     = 50.0
	TrunkWidth   = 10.0
	CanopyFactor = 0.75

	PlatformOffsetX = 50.0
	PlatformStep    = 30.0 // шаг по вертикали между платформами
	PlatformWidth   = 100.0
	PlatformHeight  = 20.0
	GuideOffsetX    = 30.0
	GuideDrop       = 50.0
	GuideWidth      = 2.0
	VineOffsetX     = 20.0

	RoofHalfWidth = 60.0
	RoofHeight    = 80.0

	GemSpreadX    = 80.0
	GemSpreadY    = 60.0
	GemBaseRadius = 5.0
	GemPulseAmp   = 2.0
	GemPulseRate  = 2.0

	SpriteRadius  = 10.0
	SpriteSwayAmp = 10.0

	PlantedMinSize  = 20.0
	PlantedSizeSpan = 20.0

	ToneFrequency   = 400.0
	ToneGain        = 0.2
	ToneDuration    = 300 * time.Millisecond
	AudioSampleRate = 44100

	ExportFileName = "treehouse-design.json"
	ToastDuration  = 3 * time.Second

	FontSize            = 14.0
	ButtonWidth         = 130.0
	ButtonHeight        = 32.0
	ButtonGap           = 10.0
	ToolbarMargin       = 16.0
	ButtonStrokeWidth   = 2.0
	ButtonPulseScale    = 0.15
	ButtonPulseDuration = 0.25 // секунды
)

var (
	WaterColor    = color.RGBA{0x46, 0x82, 0xB4, 0xFF}
	IslandColor   = color.RGBA{0x22, 0x8B, 0x22, 0xFF}
	TrunkColor    = color.RGBA{0x8B, 0x45, 0x13, 0xFF}
	CanopyColor   = color.RGBA{0x32, 0xCD, 0x32, 0xFF}
	PlatformColor = color.RGBA{0xA0, 0x52, 0x2D, 0xFF}
	GuideColor    = color.RGBA{0x22, 0x8B, 0x22, 0xFF}
	GemColor      = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	SpriteColor   = color.RGBA{0xFF, 0x69, 0xB4, 0xFF}

	RoofColors = []color.RGBA{
		{0xFF, 0xD7, 0x00, 0xFF}, // Gold
		{0xFF, 0x45, 0x00, 0xFF}, // OrangeRed
		{0x99, 0x32, 0xCC, 0xFF}, // DarkOrchid
	}

	ButtonColor       = color.RGBA{70, 100, 120, 220}
	ButtonHoverColor  = color.RGBA{70, 130, 180, 240}
	ButtonStrokeColor = color.RGBA{240, 240, 240, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	ToastColor        = color.RGBA{20, 20, 30, 200}
)
