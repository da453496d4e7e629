// internal/app/scene.go
package app

import (
	"go-treehouse/internal/component"
	"go-treehouse/internal/config"
	"go-treehouse/internal/utils"
)

// Scene owns every entity of the island design. It is not safe for
// concurrent use: only the game loop mutates it.
type Scene struct {
	Width, Height int

	Island    component.Island
	Tree      component.Tree
	Platforms []component.Platform
	Vines     []component.Vine
	Roof      *component.Roof // nil до первой платформы
	Gems      []component.Gem
	Sprite    component.Sprite

	roofColorIndex int
	rng            *utils.PRNGService
}

// NewScene creates a scene centred in a viewport of the given size.
func NewScene(width, height int, rng *utils.PRNGService) *Scene {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	s := &Scene{
		Island: component.Island{Radius: config.IslandRadius},
		Tree:   component.Tree{Size: config.TreeSize},
		Sprite: component.Sprite{Color: config.SpriteColor},
		rng:    rng,
	}
	s.Resize(width, height)
	return s
}

// Resize перецентрирует остров, дерево и спрайт. Платформы, крыша и
// камни остаются на месте.
func (s *Scene) Resize(width, height int) {
	s.Width, s.Height = width, height
	cx := float64(width) / 2
	cy := float64(height) / 2

	s.Island.X, s.Island.Y = cx, cy+config.IslandOffsetY
	s.Tree.X, s.Tree.Y = cx, cy+config.TreeOffsetY
	s.Sprite.X, s.Sprite.Y = cx, cy+config.SpriteOffsetY
}

// AddPlatform stacks a new platform one step above the previous one and
// records its vine. The first call also creates the roof.
func (s *Scene) AddPlatform() component.Platform {
	p := component.Platform{
		X:      s.Tree.X - config.PlatformOffsetX,
		Y:      s.Tree.Y - float64(len(s.Platforms))*config.PlatformStep,
		Width:  config.PlatformWidth,
		Height: config.PlatformHeight,
	}
	s.Platforms = append(s.Platforms, p)
	// Лиана считается уже от новой длины списка, на шаг выше своей платформы
	s.Vines = append(s.Vines, component.Vine{
		X: s.Tree.X - config.VineOffsetX,
		Y: s.Tree.Y - float64(len(s.Platforms))*config.PlatformStep,
	})
	if s.Roof == nil {
		s.Roof = &component.Roof{
			X:     s.Tree.X,
			Y:     s.Tree.Y,
			Color: config.RoofColors[s.roofColorIndex],
		}
	}
	return p
}

// ChangeRoofColor advances the roof through the palette. It reports
// false and does nothing when there is no roof yet.
func (s *Scene) ChangeRoofColor() bool {
	if s.Roof == nil {
		return false
	}
	s.roofColorIndex = (s.roofColorIndex + 1) % len(config.RoofColors)
	s.Roof.Color = config.RoofColors[s.roofColorIndex]
	return true
}

// AddGem drops a gem at a random spot around the tree.
func (s *Scene) AddGem() component.Gem {
	g := component.Gem{
		X: s.Tree.X + s.rng.Jitter(config.GemSpreadX),
		Y: s.Tree.Y - s.rng.Float64()*config.GemSpreadY,
	}
	s.Gems = append(s.Gems, g)
	return g
}

// PlantTree returns a tree of random height at (x, y) when the point is
// on the island. The tree is not kept in the scene.
func (s *Scene) PlantTree(x, y float64) (component.Tree, bool) {
	if !s.Island.Contains(x, y) {
		return component.Tree{}, false
	}
	return component.Tree{
		X:    x,
		Y:    y,
		Size: s.rng.Float64()*config.PlantedSizeSpan + config.PlantedMinSize,
	}, true
}

// RoofColorIndex: текущий индекс палитры крыши
func (s *Scene) RoofColorIndex() int {
	return s.roofColorIndex
}
