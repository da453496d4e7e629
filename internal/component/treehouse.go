// internal/component/treehouse.go
package component

import "image/color"

// Platform: площадка домика на дереве
type Platform struct {
	X, Y          float64
	Width, Height float64
}

// Vine: лиана, записывается вместе с каждой платформой, но не рисуется
type Vine struct {
	X, Y float64
}

// Roof: крыша над платформами, существует в единственном экземпляре
type Roof struct {
	X, Y  float64
	Color color.RGBA
}
