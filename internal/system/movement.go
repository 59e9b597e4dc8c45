// internal/system/movement.go
package system

import (
	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/entity"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
)

// MovementSystem ведёт ботов к игроку
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	target := s.world.Player.Position
	for _, bot := range s.world.Bots {
		UpdateBot(bot, target, s.world.Frames)
	}
}

// UpdateBot сдвигает бота на его текущую скорость в сторону цели,
// после чего пересчитывает скорость по числу прошедших кадров.
// Если бот уже стоит в точке цели, он не двигается.
func UpdateBot(bot *component.Bot, target component.Position, frames int) {
	if !bot.Active {
		return
	}

	dir := utils.Normalize(utils.Sub(target.Vec(), bot.Vec()))
	bot.X += dir.X * bot.Speed
	bot.Y += dir.Y * bot.Speed

	bot.Speed = BotSpeed(frames)
}

// BotSpeed — линейный рост от BotMinSpeed до BotMaxSpeed за BotRampFrames кадров.
func BotSpeed(frames int) float64 {
	if frames <= 0 {
		return config.BotMinSpeed
	}
	if frames >= config.BotRampFrames {
		return config.BotMaxSpeed
	}
	t := float64(frames) / float64(config.BotRampFrames)
	return config.BotMinSpeed + (config.BotMaxSpeed-config.BotMinSpeed)*t
}
