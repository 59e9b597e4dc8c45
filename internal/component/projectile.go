// internal/component/projectile.go
package component

import (
	"math"

	"github.com/sthaarwin/10-min-chaos/internal/config"
)

// Bullet представляет летящий снаряд. Position — центр круга.
type Bullet struct {
	Position
	Velocity Velocity
	Radius   float64
	Active   bool
}

// NewBullet создаёт снаряд, летящий под углом angle (в радианах).
func NewBullet(x, y, angle float64) *Bullet {
	return &Bullet{
		Position: Position{X: x, Y: y},
		Velocity: Velocity{
			X: math.Cos(angle) * config.BulletSpeed,
			Y: math.Sin(angle) * config.BulletSpeed,
		},
		Radius: config.BulletRadius,
		Active: true,
	}
}
