// internal/component/island.go
package component

import "go-treehouse/internal/utils"

// Island: круглый остров, на котором разрешено сажать деревья
type Island struct {
	X, Y   float64
	Radius float64
}

// Contains проверяет, лежит ли точка на острове (граница включительно).
func (i Island) Contains(x, y float64) bool {
	return utils.InCircle(x, y, i.X, i.Y, i.Radius)
}

// Tree: дерево: основание ствола и его высота.
// Используется и для центрального дерева, и для посаженных кликом.
type Tree struct {
	X, Y float64
	Size float64
}
