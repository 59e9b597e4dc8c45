// internal/component/turret.go
package component

import "github.com/sthaarwin/10-min-chaos/internal/config"

// Gun вращается вокруг игрока и смотрит на курсор.
type Gun struct {
	// Angle - текущий угол в радианах. Каждый кадр сначала сдвигается на GunSpin,
	// затем перезаписывается направлением на курсор.
	Angle float64
	// Radius - радиус орбиты вокруг центра игрока.
	Radius float64
	// Offset - смещение пушки от центра игрока.
	Offset Position
	// Position - центр пушки на экране.
	Position Position
	Size     float64
}

func NewGun() *Gun {
	return &Gun{
		Radius: config.GunOrbitRadius,
		Size:   config.GunSize,
	}
}
