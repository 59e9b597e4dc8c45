// internal/system/gun.go
package system

import (
	"math"

	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/event"
	"github.com/sthaarwin/10-min-chaos/internal/input"
)

// GunSystem держит пушку на орбите вокруг игрока, наводит её на курсор и стреляет.
// В classic пушки нет.
type GunSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	ruleset         string
}

func NewGunSystem(world *entity.World, eventDispatcher *event.Dispatcher, ruleset string) *GunSystem {
	return &GunSystem{world: world, eventDispatcher: eventDispatcher, ruleset: ruleset}
}

func (s *GunSystem) Update(in input.Frame) {
	if s.ruleset == config.RulesetClassic {
		return
	}
	gun := s.world.Gun
	center := s.world.Player.Center()

	// Поворот по орбите; угол тут же перезаписывается прицелом ниже
	gun.Angle += config.GunSpin
	gun.Offset = component.Position{
		X: gun.Radius * math.Cos(gun.Angle),
		Y: gun.Radius * math.Sin(gun.Angle),
	}
	gun.Position = component.Position{X: center.X + gun.Offset.X, Y: center.Y + gun.Offset.Y}
	gun.Angle = math.Atan2(in.PointerY-gun.Position.Y, in.PointerX-gun.Position.X)

	if s.world.FireCooldown > 0 {
		s.world.FireCooldown--
	}
	if in.Fire && s.world.FireCooldown == 0 {
		s.fire()
	}
}

func (s *GunSystem) fire() {
	gun := s.world.Gun
	bullet := component.NewBullet(gun.Position.X, gun.Position.Y, gun.Angle)
	s.world.Bullets = append(s.world.Bullets, bullet)
	s.world.FireCooldown = config.FireCooldownFrames
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Frame: s.world.Frames, Data: bullet})
}
