// internal/system/projectile.go
package system

import (
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
)

// ProjectileSystem двигает пули по прямой и гасит их за пределами экрана
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	for _, b := range s.world.Bullets {
		if !b.Active {
			continue
		}
		b.X += b.Velocity.X
		b.Y += b.Velocity.Y

		if b.X < 0 || b.X > config.ScreenWidth || b.Y < 0 || b.Y > config.ScreenHeight {
			b.Active = false
		}
	}
}
