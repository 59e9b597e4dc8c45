// internal/component/enemy.go
package component

import (
	"github.com/sthaarwin/10-min-chaos/internal/config"
	"github.com/sthaarwin/10-min-chaos/internal/utils"
)

// Bot — враг, который движется к игроку.
type Bot struct {
	Position
	Width, Height float64
	Speed         float64
	Active        bool
}

// NewBot создаёт активного бота с минимальной скоростью.
func NewBot(x, y float64) *Bot {
	return &Bot{
		Position: Position{X: x, Y: y},
		Width:    config.BotSize,
		Height:   config.BotSize,
		Speed:    config.BotMinSpeed,
		Active:   true,
	}
}

func (b *Bot) Bounds() utils.Rect {
	return utils.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}
