// internal/system/player_system.go
package system

import (
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/input"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
)

// PlayerSystem двигает игрока и снимает неуязвимость.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// Update применяет одно направление за кадр: вверх, вниз, влево, вправо — первое нажатое.
func (s *PlayerSystem) Update(in input.Frame) {
	p := s.world.Player

	switch {
	case in.Up:
		p.Y -= p.Speed
	case in.Down:
		p.Y += p.Speed
	case in.Left:
		p.X -= p.Speed
	case in.Right:
		p.X += p.Speed
	}

	p.X = utils.Clamp(p.X, config.ScreenMargin, config.ScreenWidth-p.Width-config.ScreenMargin)
	p.Y = utils.Clamp(p.Y, config.ScreenMargin, config.ScreenHeight-p.Height-config.ScreenMargin)

	if p.Invulnerable && s.world.Frames-p.LastHitFrame >= config.InvulnerabilityFrames {
		p.Invulnerable = false
	}
}
