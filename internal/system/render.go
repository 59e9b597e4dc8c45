// internal/system/render.go
package system

import (
	"math"

	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/pkg/render"
)

// RenderSystem рисует сущности мира
type RenderSystem struct {
	world   *entity.World
	ruleset string
}

func NewRenderSystem(world *entity.World, ruleset string) *RenderSystem {
	return &RenderSystem{world: world, ruleset: ruleset}
}

func (s *RenderSystem) Draw(r render.Renderer) {
	for _, bot := range s.world.Bots {
		if !bot.Active {
			continue
		}
		r.DrawRectangle(bot.X, bot.Y, bot.Width, bot.Height, config.BotColor)
	}

	p := s.world.Player
	playerColor := config.PlayerColor
	if p.Invulnerable {
		playerColor = render.DarkenColor(playerColor)
	}
	r.DrawRectangle(p.X, p.Y, p.Width, p.Height, playerColor)

	if s.ruleset != config.RulesetClassic {
		s.drawGun(r)
	}

	for _, b := range s.world.Bullets {
		if b.Active {
			r.DrawCircle(b.X, b.Y, b.Radius, config.BulletColor)
		}
	}
}

// drawGun рисует треугольник, вершина которого смотрит по углу прицела.
func (s *RenderSystem) drawGun(r render.Renderer) {
	gun := s.world.Gun
	cos, sin := math.Cos(gun.Angle), math.Sin(gun.Angle)
	half := gun.Size / 2

	tipX := gun.Position.X + cos*gun.Size
	tipY := gun.Position.Y + sin*gun.Size
	baseX := gun.Position.X - cos*half
	baseY := gun.Position.Y - sin*half

	r.DrawTriangleLines(
		tipX, tipY,
		baseX-sin*half, baseY+cos*half,
		baseX+sin*half, baseY-cos*half,
		config.GunColor,
	)
}
