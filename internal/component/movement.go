// component/movement.go
package component

import "github.com/sthaarwin/10-min-chaos/internal/utils"

// Position — компонент позиции (левый верхний угол для прямоугольников, центр для пуль)
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Velocity — смещение за кадр
type Velocity struct {
	X, Y float64
}

// Collider — всё, что участвует в прямоугольных столкновениях.
type Collider interface {
	Bounds() utils.Rect
}
