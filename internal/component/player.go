// internal/component/player.go
package component

import (
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
)

// Player — аватар игрока.
type Player struct {
	Position
	Width, Height float64
	Speed         float64
	Health        int
	// Invulnerable — после удара игрок неуязвим InvulnerabilityFrames кадров.
	Invulnerable bool
	LastHitFrame int
}

// NewPlayer создаёт игрока в центре экрана.
func NewPlayer() *Player {
	return &Player{
		Position: Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
		Width:    config.PlayerSize,
		Height:   config.PlayerSize,
		Speed:    config.PlayerSpeed,
		Health:   config.PlayerHealth,
	}
}

func (p *Player) Bounds() utils.Rect {
	return utils.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Center возвращает центр прямоугольника игрока.
func (p *Player) Center() utils.Vec2 {
	return utils.Vec2{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}

// DecreaseHealth снимает одну единицу здоровья, если игрок не неуязвим.
// Возвращает true, если удар засчитан.
func (p *Player) DecreaseHealth(frame int) bool {
	if p.Invulnerable {
		return false
	}
	p.Health--
	p.Invulnerable = true
	p.LastHitFrame = frame
	return true
}
