// pkg/render/color.go
package render

import (
	"image/color"

	"go-treehouse/internal/config"
)

// SceneColors holds all the colors needed to render the island scene.
type SceneColors struct {
	Water    color.RGBA
	Island   color.RGBA
	Trunk    color.RGBA
	Canopy   color.RGBA
	Platform color.RGBA
	Guide    color.RGBA
	Gem      color.RGBA
}

// DefaultSceneColors собирает палитру из config.
func DefaultSceneColors() SceneColors {
	return SceneColors{
		Water:    config.WaterColor,
		Island:   config.IslandColor,
		Trunk:    config.TrunkColor,
		Canopy:   config.CanopyColor,
		Platform: config.PlatformColor,
		Guide:    config.GuideColor,
		Gem:      config.GemColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
