// internal/component/decoration.go
package component

import "image/color"

// Gem: драгоценный камень; пульсация вычисляется из времени при отрисовке
type Gem struct {
	X, Y float64
}

// Sprite: персонаж; покачивание по X вычисляется из времени и не хранится
type Sprite struct {
	X, Y  float64
	Color color.RGBA
}
