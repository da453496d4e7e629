// pkg/render/scene_renderer.go
package render

import (
	"math"

	"go-treehouse/internal/app"
	"go-treehouse/internal/component"
	"go-treehouse/internal/config"
)

// SceneRenderer рисует сцену. Draw является чистой функцией от (сцена, время):
// никаких счётчиков между кадрами, сцена не изменяется.
type SceneRenderer struct {
	colors SceneColors
}

func NewSceneRenderer(colors SceneColors) *SceneRenderer {
	return &SceneRenderer{colors: colors}
}

// Draw paints the whole scene at time t (seconds).
func (r *SceneRenderer) Draw(c Canvas, s *app.Scene, t float64) {
	// Вода
	c.Fill(r.colors.Water)

	// Остров
	c.FillCircle(float32(s.Island.X), float32(s.Island.Y), float32(s.Island.Radius), r.colors.Island)

	// Центральное дерево
	r.DrawTree(c, s.Tree)

	// Платформы с направляющей к дереву
	guideBottom := float32(s.Tree.Y + config.GuideDrop)
	for _, p := range s.Platforms {
		c.FillRect(float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), r.colors.Platform)
		gx := float32(p.X + config.GuideOffsetX)
		c.StrokeLine(gx, float32(p.Y), gx, guideBottom, config.GuideWidth, r.colors.Guide)
	}

	if s.Roof != nil {
		r.drawRoof(c, *s.Roof)
	}

	gemRadius := float32(GemRadius(t))
	for _, g := range s.Gems {
		c.FillCircle(float32(g.X), float32(g.Y), gemRadius, r.colors.Gem)
	}

	c.FillCircle(float32(s.Sprite.X+SpriteOffset(t)), float32(s.Sprite.Y), config.SpriteRadius, s.Sprite.Color)
}

// DrawTree рисует ствол и крону; используется и для посаженных деревьев.
func (r *SceneRenderer) DrawTree(c Canvas, tree component.Tree) {
	top := tree.Y - tree.Size
	c.FillRect(float32(tree.X-config.TrunkWidth/2), float32(top), config.TrunkWidth, float32(tree.Size), r.colors.Trunk)
	c.FillCircle(float32(tree.X), float32(top), float32(tree.Size*config.CanopyFactor), r.colors.Canopy)
}

func (r *SceneRenderer) drawRoof(c Canvas, roof component.Roof) {
	c.FillTriangle(
		float32(roof.X-config.RoofHalfWidth), float32(roof.Y),
		float32(roof.X), float32(roof.Y-config.RoofHeight),
		float32(roof.X+config.RoofHalfWidth), float32(roof.Y),
		roof.Color,
	)
}

// GemRadius: радиус пульсирующего камня в момент t
func GemRadius(t float64) float64 {
	return config.GemBaseRadius + math.Sin(t*config.GemPulseRate)*config.GemPulseAmp
}

// SpriteOffset: горизонтальное покачивание спрайта в момент t
func SpriteOffset(t float64) float64 {
	return math.Sin(t) * config.SpriteSwayAmp
}
